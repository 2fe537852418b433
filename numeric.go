package jsonschema

import (
	"fmt"
	"math"
)

// compileNumericKeywords compiles multipleOf, maximum, exclusiveMaximum,
// minimum and exclusiveMinimum. Draft 7 made exclusiveMinimum/Maximum plain
// numbers (they were booleans-modifying-minimum/maximum in draft 4), so each
// is compiled as its own independent bound rather than a flag on another.
func compileNumericKeywords(s *Schema, value *Value) *ValidationError {
	var errs *ValidationError

	if v, ok := value.Get("multipleOf"); ok {
		if !v.IsNumber() {
			errs = addIssue(errs, "compile_invalid_multipleOf", "multipleOf must be a number", v.Pos)
		} else if v.NumberValue() <= 0 {
			errs = addIssue(errs, "compile_invalid_multipleOf", "multipleOf must be strictly positive", v.Pos)
		} else {
			n := v.NumberValue()
			s.multipleOf = &n
		}
	}
	if v, ok := value.Get("maximum"); ok {
		if n, ok := numericField(v, &errs, "maximum"); ok {
			s.maximum = n
		}
	}
	if v, ok := value.Get("minimum"); ok {
		if n, ok := numericField(v, &errs, "minimum"); ok {
			s.minimum = n
		}
	}
	if v, ok := value.Get("exclusiveMaximum"); ok {
		if n, ok := numericField(v, &errs, "exclusiveMaximum"); ok {
			s.exclusiveMaximum = n
		}
	}
	if v, ok := value.Get("exclusiveMinimum"); ok {
		if n, ok := numericField(v, &errs, "exclusiveMinimum"); ok {
			s.exclusiveMinimum = n
		}
	}
	return errs
}

func numericField(v *Value, errs **ValidationError, name string) (*float64, bool) {
	if !v.IsNumber() {
		*errs = addIssue(*errs, "compile_invalid_"+name, name+" must be a number", v.Pos)
		return nil, false
	}
	n := v.NumberValue()
	return &n, true
}

// validateNumeric runs every compiled numeric keyword against instance,
// which the caller has already established IsNumber(). Failures append to
// result rather than short-circuiting, so multiple bound violations on the
// same number are all reported.
func validateNumeric(s *Schema, instance *Value, result *ValidationError) *ValidationError {
	n := instance.NumberValue()

	if s.multipleOf != nil {
		if !isMultipleOf(n, *s.multipleOf) {
			result = addIssue(result, "multipleOf", fmt.Sprintf("%v is not a multiple of %v", n, *s.multipleOf), instance.Pos,
				map[string]any{"value": n, "divisor": *s.multipleOf})
		}
	}
	if s.maximum != nil && n > *s.maximum {
		result = addIssue(result, "maximum", fmt.Sprintf("%v exceeds maximum %v", n, *s.maximum), instance.Pos,
			map[string]any{"value": n, "max": *s.maximum})
	}
	if s.minimum != nil && n < *s.minimum {
		result = addIssue(result, "minimum", fmt.Sprintf("%v is less than minimum %v", n, *s.minimum), instance.Pos,
			map[string]any{"value": n, "min": *s.minimum})
	}
	if s.exclusiveMaximum != nil && n >= *s.exclusiveMaximum {
		result = addIssue(result, "exclusiveMaximum", fmt.Sprintf("%v is not strictly less than %v", n, *s.exclusiveMaximum), instance.Pos,
			map[string]any{"value": n, "max": *s.exclusiveMaximum})
	}
	if s.exclusiveMinimum != nil && n <= *s.exclusiveMinimum {
		result = addIssue(result, "exclusiveMinimum", fmt.Sprintf("%v is not strictly greater than %v", n, *s.exclusiveMinimum), instance.Pos,
			map[string]any{"value": n, "min": *s.exclusiveMinimum})
	}
	return result
}

// isMultipleOf reports whether n/divisor is (within floating-point
// tolerance) an integer, the standard way multipleOf is checked when
// instances may be either JSON integers or floats.
func isMultipleOf(n, divisor float64) bool {
	if divisor == 0 {
		return false
	}
	quotient := n / divisor
	return math.Abs(quotient-math.Round(quotient)) < 1e-9
}
