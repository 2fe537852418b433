package jsonschema

import "strings"

// matchesType reports whether instance's runtime kind satisfies one of the
// declared Draft 7 primitive type names. "integer" matches only a KindInteger
// value: Integer(1) and Float(1.0) are distinct kinds here, and a Float is
// never treated as satisfying "integer" regardless of its fractional part.
func matchesType(typeName string, instance *Value) bool {
	switch typeName {
	case "null":
		return instance.Kind == KindNull
	case "boolean":
		return instance.Kind == KindBoolean
	case "object":
		return instance.Kind == KindObject
	case "array":
		return instance.Kind == KindArray
	case "string":
		return instance.Kind == KindString
	case "number":
		return instance.IsNumber()
	case "integer":
		return instance.Kind == KindInteger
	default:
		return false
	}
}

// validateType checks the "type" keyword, reporting failure only once even
// when several candidate types in a type-array all fail to match.
func validateType(s *Schema, instance *Value, result *ValidationError) *ValidationError {
	if len(s.types) == 0 {
		return result
	}
	for _, t := range s.types {
		if matchesType(t, instance) {
			return result
		}
	}
	return addIssue(result, "type", "value does not match type "+typeList(s.types), instance.Pos)
}

func typeList(types []string) string {
	if len(types) == 1 {
		return "\"" + types[0] + "\""
	}
	return "[" + strings.Join(types, ", ") + "]"
}
