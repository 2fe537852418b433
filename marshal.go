package jsonschema

import "github.com/goccy/go-json"

// MarshalJSON re-serializes the schema from the Value tree it was compiled
// from, via goccy/go-json, so a compiled Schema can be written back out
// (e.g. by the CLI's "-verbose" mode) byte-for-byte equivalent in structure to
// what it was compiled from, modulo key order normalization goccy/go-json
// itself applies to map[string]any.
func (s *Schema) MarshalJSON() ([]byte, error) {
	if s.boolean != nil {
		return json.Marshal(*s.boolean)
	}
	return json.Marshal(valueToAny(s.source))
}

// valueToAny converts a parsed Value tree into the plain Go values
// (map[string]any, []any, string, float64/int64, bool, nil) that
// goccy/go-json knows how to encode.
func valueToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindNull:
		return nil
	case KindBoolean:
		return v.Bool
	case KindInteger:
		return v.Int
	case KindFloat:
		return v.Flt
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = valueToAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Members))
		for _, m := range v.Members {
			out[m.Key.Str] = valueToAny(m.Value)
		}
		return out
	default:
		return nil
	}
}
