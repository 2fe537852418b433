package jsonschema

// maxRefDepth bounds $ref recursion. A cyclic schema (one that legitimately
// refers back to an ancestor, e.g. a recursive "tree node" schema) is valid
// JSON Schema and must validate successfully; this only guards against an
// instance whose own structure is unboundedly recursive driving the
// validator into a stack overflow.
const maxRefDepth = 10000

// validateOptions carries per-call state threaded through every recursive
// validateSchema call: the format-assertion toggle and the $ref recursion
// counter.
type validateOptions struct {
	assertFormat bool
	checker      *formatRegistry
	refDepth     int
}

// Validate checks instance against the compiled schema, returning nil on
// success or a *ValidationError aggregating every violation found. Unlike
// many validators this never stops at the first failure: every keyword on
// every matching subschema runs, and their issues are concatenated.
func (s *Schema) Validate(instance *Value) *ValidationError {
	return validateSchema(s, instance, &validateOptions{})
}

func validateSchema(s *Schema, instance *Value, opts *validateOptions) *ValidationError {
	if s == nil {
		return nil
	}

	if s.boolean != nil {
		if *s.boolean {
			return nil
		}
		return singleError("schema_false", "no instance is valid against the 'false' schema", instance.Pos)
	}

	if s.ref != "" {
		if s.resolvedRef == nil {
			return singleError("ref_unresolved", "unresolved $ref \""+s.ref+"\"", instance.Pos)
		}
		if opts.refDepth >= maxRefDepth {
			return singleError("ref_depth_exceeded", "$ref recursion exceeded maximum depth", instance.Pos)
		}
		sub := *opts
		sub.refDepth++
		return validateSchema(s.resolvedRef, instance, &sub)
	}

	var result *ValidationError

	result = validateType(s, instance, result)
	result = validateEnumAndConst(s, instance, result)

	switch instance.Kind {
	case KindInteger, KindFloat:
		result = validateNumeric(s, instance, result)
	case KindString:
		result = validateString(s, instance, result)
	case KindArray:
		result = validateArray(s, instance, opts, result)
	case KindObject:
		result = validateObject(s, instance, opts, result)
	}

	if s.format != "" && opts.assertFormat && opts.checker != nil {
		result = validateFormat(s, instance, opts.checker, result)
	}

	result = validateLogic(s, instance, opts, result)

	return result
}
