package jsonschema

import "fmt"

// compileArrayKeywords compiles items, additionalItems, maxItems, minItems,
// uniqueItems and contains.
//
// Draft 7 gives "items" two shapes: a single schema applied to every
// element, or an array of schemas applied positionally (a tuple), in which
// case "additionalItems" governs elements past the end of the tuple.
func compileArrayKeywords(s *Schema, value *Value, resolver *RefResolver, path string) *ValidationError {
	var errs *ValidationError

	if v, ok := value.Get("items"); ok {
		switch v.Kind {
		case KindArray:
			for i, item := range v.Elements {
				sub, err := compile(item, s, resolver, s.baseURI, childPathIndex(childPath(path, "items"), i), false)
				errs = mergeErrors(errs, err)
				if sub != nil {
					s.itemsTuple = append(s.itemsTuple, sub)
				}
			}
		default:
			sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "items"), false)
			errs = mergeErrors(errs, err)
			s.items = sub
		}
	}

	// additionalItems is only consulted during validation alongside
	// tuple-form items (see validateArray); with single-schema items or no
	// items at all it is still compiled here so a malformed value is still
	// a compile error, just never evaluated against an instance.
	if v, ok := value.Get("additionalItems"); ok {
		if v.Kind == KindBoolean && !v.Bool {
			s.additionalItemsDeny = true
		} else {
			sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "additionalItems"), false)
			errs = mergeErrors(errs, err)
			s.additionalItems = sub
		}
	}

	if v, ok := value.Get("maxItems"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "maxItems"); ok {
			s.maxItems = &n
		}
	}
	if v, ok := value.Get("minItems"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "minItems"); ok {
			s.minItems = &n
		}
	}
	if v, ok := value.Get("uniqueItems"); ok {
		if v.Kind != KindBoolean {
			errs = addIssue(errs, "compile_invalid_uniqueItems", "uniqueItems must be a boolean", v.Pos)
		} else {
			s.uniqueItems = v.Bool
		}
	}
	if v, ok := value.Get("contains"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "contains"), false)
		errs = mergeErrors(errs, err)
		s.contains = sub
	}

	return errs
}

// validateArray runs every compiled array keyword against instance, which
// the caller has already established is a KindArray.
func validateArray(s *Schema, instance *Value, opts *validateOptions, result *ValidationError) *ValidationError {
	n := len(instance.Elements)

	if s.maxItems != nil && n > *s.maxItems {
		result = addIssue(result, "maxItems", fmt.Sprintf("array has %d items, exceeds maxItems %d", n, *s.maxItems), instance.Pos)
	}
	if s.minItems != nil && n < *s.minItems {
		result = addIssue(result, "minItems", fmt.Sprintf("array has %d items, fewer than minItems %d", n, *s.minItems), instance.Pos)
	}

	if s.uniqueItems {
		seen := make(map[string]int, n)
		for i, elem := range instance.Elements {
			key := canonicalKey(elem)
			if first, dup := seen[key]; dup {
				result = addIssue(result, "uniqueItems", fmt.Sprintf("items at index %d and %d are duplicates", first, i), instance.Pos)
			} else {
				seen[key] = i
			}
		}
	}

	if len(s.itemsTuple) > 0 {
		for i, elem := range instance.Elements {
			if i < len(s.itemsTuple) {
				result = mergeErrors(result, validateSchema(s.itemsTuple[i], elem, opts))
				continue
			}
			if s.additionalItemsDeny {
				result = addIssue(result, "additionalItems", fmt.Sprintf("item at index %d is not permitted by additionalItems", i), elem.Pos)
				continue
			}
			if s.additionalItems != nil {
				result = mergeErrors(result, validateSchema(s.additionalItems, elem, opts))
			}
		}
	} else if s.items != nil {
		for _, elem := range instance.Elements {
			result = mergeErrors(result, validateSchema(s.items, elem, opts))
		}
	}

	if s.contains != nil {
		found := false
		for _, elem := range instance.Elements {
			if validateSchema(s.contains, elem, opts) == nil {
				found = true
				break
			}
		}
		if !found {
			result = addIssue(result, "contains", "array does not contain an element matching the required schema", instance.Pos)
		}
	}

	return result
}
