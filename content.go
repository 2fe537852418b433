package jsonschema

import "encoding/base64"

// DecodeContent decodes a string instance's "contentEncoding", returning the
// raw bytes. contentEncoding and contentMediaType are annotation-only per
// Draft 7 §8: a string that fails to decode is never a validation failure,
// it is simply not exposed to DecodeContent's caller to act on.
//
// Only "base64" is implemented; any other contentEncoding value (including
// the empty string, meaning "no encoding declared") reports ok=false.
func (s *Schema) DecodeContent(instance *Value) (data []byte, ok bool) {
	if instance.Kind != KindString || s.contentEncoding != "base64" {
		return nil, false
	}
	decoded, err := base64.StdEncoding.DecodeString(instance.Str)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// ContentMediaType returns the declared contentMediaType, or "" if none was
// declared. Like contentEncoding, it is annotation-only: this engine never
// parses the decoded bytes as that media type to validate them.
func (s *Schema) ContentMediaType() string {
	return s.contentMediaType
}
