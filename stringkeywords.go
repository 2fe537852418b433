package jsonschema

import (
	"fmt"
	"regexp"
)

// compileStringKeywords compiles maxLength, minLength and pattern. pattern
// is compiled to a *regexp.Regexp once here so validation never pays
// recompilation cost per instance.
func compileStringKeywords(s *Schema, value *Value) *ValidationError {
	var errs *ValidationError

	if v, ok := value.Get("maxLength"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "maxLength"); ok {
			s.maxLength = &n
		}
	}
	if v, ok := value.Get("minLength"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "minLength"); ok {
			s.minLength = &n
		}
	}
	if v, ok := value.Get("pattern"); ok {
		if v.Kind != KindString {
			errs = addIssue(errs, "compile_invalid_pattern", "pattern must be a string", v.Pos)
		} else {
			re, err := regexp.Compile(v.Str)
			if err != nil {
				errs = addIssue(errs, "compile_invalid_regex", fmt.Sprintf("invalid pattern %q: %v", v.Str, err), v.Pos)
			} else {
				s.pattern = v.Str
				s.patternRe = re
			}
		}
	}
	return errs
}

func nonNegativeIntField(v *Value, errs **ValidationError, name string) (int, bool) {
	if v.Kind != KindInteger || v.Int < 0 {
		*errs = addIssue(*errs, "compile_invalid_"+name, name+" must be a non-negative integer", v.Pos)
		return 0, false
	}
	return int(v.Int), true
}

// validateString runs maxLength/minLength/pattern against instance, which
// the caller has already established is a KindString. Length is measured in
// Unicode code points, matching Draft 7's definition rather than UTF-8 byte
// count or UTF-16 code unit count.
func validateString(s *Schema, instance *Value, result *ValidationError) *ValidationError {
	length := instance.Len()

	if s.maxLength != nil && length > *s.maxLength {
		result = addIssue(result, "maxLength", fmt.Sprintf("string length %d exceeds maxLength %d", length, *s.maxLength), instance.Pos)
	}
	if s.minLength != nil && length < *s.minLength {
		result = addIssue(result, "minLength", fmt.Sprintf("string length %d is less than minLength %d", length, *s.minLength), instance.Pos)
	}
	if s.patternRe != nil && !s.patternRe.MatchString(instance.Str) {
		result = addIssue(result, "pattern", fmt.Sprintf("string does not match pattern %q", s.pattern), instance.Pos)
	}
	return result
}
