package jsonschema

import (
	"fmt"
	"regexp"
)

// compileObjectKeywords compiles maxProperties, minProperties, required,
// properties, patternProperties, additionalProperties, propertyNames and
// dependencies.
func compileObjectKeywords(s *Schema, value *Value, resolver *RefResolver, path string) *ValidationError {
	var errs *ValidationError

	if v, ok := value.Get("maxProperties"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "maxProperties"); ok {
			s.maxProperties = &n
		}
	}
	if v, ok := value.Get("minProperties"); ok {
		if n, ok := nonNegativeIntField(v, &errs, "minProperties"); ok {
			s.minProperties = &n
		}
	}
	if v, ok := value.Get("required"); ok {
		if v.Kind != KindArray {
			errs = addIssue(errs, "compile_invalid_required", "required must be an array of strings", v.Pos)
		} else {
			for _, r := range v.Elements {
				if r.Kind != KindString {
					errs = addIssue(errs, "compile_invalid_required", "required entries must be strings", r.Pos)
					continue
				}
				s.required = append(s.required, r.Str)
			}
		}
	}

	if v, ok := value.Get("properties"); ok {
		if v.Kind != KindObject {
			errs = addIssue(errs, "compile_invalid_properties", "properties must be an object", v.Pos)
		} else {
			s.properties = make(map[string]*Schema, len(v.Members))
			for _, m := range v.Members {
				sub, err := compile(m.Value, s, resolver, s.baseURI, childPath(childPath(path, "properties"), m.Key.Str), false)
				errs = mergeErrors(errs, err)
				s.properties[m.Key.Str] = sub
				s.propertyOrder = append(s.propertyOrder, m.Key.Str)
			}
		}
	}

	if v, ok := value.Get("patternProperties"); ok {
		if v.Kind != KindObject {
			errs = addIssue(errs, "compile_invalid_patternProperties", "patternProperties must be an object", v.Pos)
		} else {
			s.patternProperties = make(map[string]*Schema, len(v.Members))
			s.patternPropertiesRe = make(map[string]*regexp.Regexp, len(v.Members))
			for _, m := range v.Members {
				re, reErr := regexp.Compile(m.Key.Str)
				if reErr != nil {
					errs = addIssue(errs, "compile_invalid_regex", fmt.Sprintf("invalid patternProperties key %q: %v", m.Key.Str, reErr), m.Key.Pos)
					continue
				}
				sub, err := compile(m.Value, s, resolver, s.baseURI, childPath(childPath(path, "patternProperties"), m.Key.Str), false)
				errs = mergeErrors(errs, err)
				s.patternProperties[m.Key.Str] = sub
				s.patternPropertiesRe[m.Key.Str] = re
				s.patternPropertiesOrd = append(s.patternPropertiesOrd, m.Key.Str)
			}
		}
	}

	if v, ok := value.Get("additionalProperties"); ok {
		if v.Kind == KindBoolean && !v.Bool {
			s.additionalPropertiesDeny = true
		} else {
			sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "additionalProperties"), false)
			errs = mergeErrors(errs, err)
			s.additionalProperties = sub
		}
	}

	if v, ok := value.Get("propertyNames"); ok {
		sub, err := compile(v, s, resolver, s.baseURI, childPath(path, "propertyNames"), false)
		errs = mergeErrors(errs, err)
		s.propertyNames = sub
	}

	if v, ok := value.Get("dependencies"); ok {
		if v.Kind != KindObject {
			errs = addIssue(errs, "compile_invalid_dependencies", "dependencies must be an object", v.Pos)
		} else {
			s.dependencies = make(map[string]*dependency, len(v.Members))
			for _, m := range v.Members {
				dep := &dependency{}
				switch m.Value.Kind {
				case KindArray:
					for _, r := range m.Value.Elements {
						if r.Kind != KindString {
							errs = addIssue(errs, "compile_invalid_dependencies", "dependency property lists must contain only strings", r.Pos)
							continue
						}
						dep.requiredProps = append(dep.requiredProps, r.Str)
					}
				case KindObject, KindBoolean:
					sub, err := compile(m.Value, s, resolver, s.baseURI, childPath(childPath(path, "dependencies"), m.Key.Str), false)
					errs = mergeErrors(errs, err)
					dep.schema = sub
				default:
					errs = addIssue(errs, "compile_invalid_dependencies", "dependency entries must be an array of strings or a schema", m.Value.Pos)
				}
				s.dependencies[m.Key.Str] = dep
			}
		}
	}

	return errs
}

// validateObject runs every compiled object keyword against instance, which
// the caller has already established is a KindObject.
func validateObject(s *Schema, instance *Value, opts *validateOptions, result *ValidationError) *ValidationError {
	n := len(instance.Members)

	if s.maxProperties != nil && n > *s.maxProperties {
		result = addIssue(result, "maxProperties", fmt.Sprintf("object has %d properties, exceeds maxProperties %d", n, *s.maxProperties), instance.Pos)
	}
	if s.minProperties != nil && n < *s.minProperties {
		result = addIssue(result, "minProperties", fmt.Sprintf("object has %d properties, fewer than minProperties %d", n, *s.minProperties), instance.Pos)
	}
	for _, req := range s.required {
		if _, ok := instance.Get(req); !ok {
			result = addIssue(result, "required", fmt.Sprintf("missing required property %q", req), instance.Pos)
		}
	}

	for _, m := range instance.Members {
		key := m.Key.Str
		matchedSomething := false

		if sub, ok := s.properties[key]; ok {
			result = mergeErrors(result, validateSchema(sub, m.Value, opts))
			matchedSomething = true
		}
		for _, patStr := range s.patternPropertiesOrd {
			re := s.patternPropertiesRe[patStr]
			if re != nil && re.MatchString(key) {
				result = mergeErrors(result, validateSchema(s.patternProperties[patStr], m.Value, opts))
				matchedSomething = true
			}
		}
		if matchedSomething {
			continue
		}
		if s.additionalPropertiesDeny {
			result = addIssue(result, "additionalProperties", fmt.Sprintf("additional property %q is not permitted", key), m.Key.Pos)
			continue
		}
		if s.additionalProperties != nil {
			result = mergeErrors(result, validateSchema(s.additionalProperties, m.Value, opts))
		}
	}

	if s.propertyNames != nil {
		for _, m := range instance.Members {
			result = mergeErrors(result, validateSchema(s.propertyNames, m.Key, opts))
		}
	}

	for propName, dep := range s.dependencies {
		if _, ok := instance.Get(propName); !ok {
			continue
		}
		for _, req := range dep.requiredProps {
			if _, ok := instance.Get(req); !ok {
				result = addIssue(result, "dependencies", fmt.Sprintf("property %q requires property %q", propName, req), instance.Pos)
			}
		}
		if dep.schema != nil {
			result = mergeErrors(result, validateSchema(dep.schema, instance, opts))
		}
	}

	return result
}
