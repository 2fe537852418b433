package jsonschema

import "fmt"

// compileLogicKeywords compiles allOf, anyOf, oneOf, not, if, then and else.
func compileLogicKeywords(s *Schema, value *Value, resolver *RefResolver, path string) *ValidationError {
	var errs *ValidationError

	compileList := func(keyword string) []*Schema {
		v, ok := value.Get(keyword)
		if !ok {
			return nil
		}
		if v.Kind != KindArray || len(v.Elements) == 0 {
			errs = addIssue(errs, "compile_invalid_"+keyword, keyword+" must be a non-empty array of schemas", v.Pos)
			return nil
		}
		list := make([]*Schema, 0, len(v.Elements))
		for i, item := range v.Elements {
			sub, err := compile(item, s, resolver, s.baseURI, childPathIndex(childPath(path, keyword), i), false)
			errs = mergeErrors(errs, err)
			if sub != nil {
				list = append(list, sub)
			}
		}
		return list
	}

	s.allOf = compileList("allOf")
	s.anyOf = compileList("anyOf")
	s.oneOf = compileList("oneOf")

	if v, ok := value.Get("not"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "not"), false)
		errs = mergeErrors(errs, err)
		s.not = sub
	}
	if v, ok := value.Get("if"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "if"), false)
		errs = mergeErrors(errs, err)
		s.ifSchema = sub
	}
	if v, ok := value.Get("then"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "then"), false)
		errs = mergeErrors(errs, err)
		s.thenSchema = sub
	}
	if v, ok := value.Get("else"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "else"), false)
		errs = mergeErrors(errs, err)
		s.elseSchema = sub
	}

	return errs
}

// validateLogic runs allOf/anyOf/oneOf/not/if-then-else against instance.
func validateLogic(s *Schema, instance *Value, opts *validateOptions, result *ValidationError) *ValidationError {
	for _, sub := range s.allOf {
		result = mergeErrors(result, validateSchema(sub, instance, opts))
	}

	if len(s.anyOf) > 0 {
		ok := false
		for _, sub := range s.anyOf {
			if validateSchema(sub, instance, opts) == nil {
				ok = true
				break
			}
		}
		if !ok {
			result = addIssue(result, "anyOf", "instance does not match any schema in anyOf", instance.Pos)
		}
	}

	if len(s.oneOf) > 0 {
		matches := 0
		for _, sub := range s.oneOf {
			if validateSchema(sub, instance, opts) == nil {
				matches++
			}
		}
		if matches != 1 {
			result = addIssue(result, "oneOf", fmt.Sprintf("instance matches %d schemas in oneOf, expected exactly 1", matches), instance.Pos)
		}
	}

	if s.not != nil && validateSchema(s.not, instance, opts) == nil {
		result = addIssue(result, "not", "instance matches schema in 'not'", instance.Pos)
	}

	if s.ifSchema != nil {
		if validateSchema(s.ifSchema, instance, opts) == nil {
			if s.thenSchema != nil {
				result = mergeErrors(result, validateSchema(s.thenSchema, instance, opts))
			}
		} else if s.elseSchema != nil {
			result = mergeErrors(result, validateSchema(s.elseSchema, instance, opts))
		}
	}

	return result
}
