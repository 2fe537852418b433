package jsonschema

// validateEnumAndConst checks the "enum" and "const" keywords. Membership
// is decided through the precomputed canonicalKey set rather than comparing
// instance against every enum member in turn, so a large enum stays O(1)
// per instance instead of O(n).
func validateEnumAndConst(s *Schema, instance *Value, result *ValidationError) *ValidationError {
	if s.enumKeys != nil {
		if _, ok := s.enumKeys[canonicalKey(instance)]; !ok {
			result = addIssue(result, "enum", "value is not one of the permitted enum values", instance.Pos)
		}
	}
	if s.hasConst {
		if !s.constVal.Equal(instance) {
			result = addIssue(result, "const", "value does not equal the required const value", instance.Pos)
		}
	}
	return result
}
