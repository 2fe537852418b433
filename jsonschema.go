package jsonschema

import (
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

var defaultCompiler = NewCompiler()

// Compile parses and compiles a Draft 7 schema document, using a shared
// package-level Compiler with default settings (format assertion disabled,
// remote $refs fetched over plain HTTP/HTTPS). Most callers that don't need
// custom formats or a custom Fetcher can use this instead of constructing
// their own Compiler.
func Compile(source string) (*Schema, *ValidationError) {
	return defaultCompiler.Compile(source)
}

// CompileBytes is Compile for raw bytes, validating UTF-8 first since a
// *Schema is only ever built from text known to be valid UTF-8.
func CompileBytes(data []byte) (*Schema, *ValidationError) {
	if !isValidUTF8(data) {
		return nil, singleError("compile_invalid_utf8", ErrInvalidUTF8.Error(), UnknownPosition)
	}
	return defaultCompiler.CompileBytes(data)
}

// Validate parses instance as JSON text and checks it against schema.
func Validate(schema *Schema, instance string) *ValidationError {
	doc, err := parseDocument(instance, false)
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

// ValidateBytes is Validate for raw bytes.
func ValidateBytes(schema *Schema, data []byte) *ValidationError {
	if !isValidUTF8(data) {
		return singleError("validate_invalid_utf8", ErrInvalidUTF8.Error(), UnknownPosition)
	}
	return Validate(schema, string(data))
}

// CompileYAML compiles a schema document written as YAML: it is decoded to
// a generic value tree with goccy/go-yaml, re-encoded as JSON with
// goccy/go-json, and fed through the same compiler every JSON schema goes
// through, so YAML and JSON schemas share one set of semantics exactly.
func CompileYAML(source []byte) (*Schema, *ValidationError) {
	jsonBytes, err := YAMLToJSON(source)
	if err != nil {
		return nil, singleError("compile_invalid_yaml", err.Error(), UnknownPosition)
	}
	return CompileBytes(jsonBytes)
}

// ValidateYAML validates a YAML-encoded instance document against schema,
// converting it to JSON the same way CompileYAML does.
func ValidateYAML(schema *Schema, source []byte) *ValidationError {
	jsonBytes, err := YAMLToJSON(source)
	if err != nil {
		return singleError("validate_invalid_yaml", err.Error(), UnknownPosition)
	}
	return ValidateBytes(schema, jsonBytes)
}

// YAMLToJSON decodes source as YAML and re-encodes it as JSON, the
// conversion every YAML entry point in this package shares so that a YAML
// schema or instance is compiled/validated under exactly the same semantics
// as its JSON equivalent. Exported so a caller with its own *Compiler (which
// has no YAML-specific methods) can perform the same conversion before
// calling CompileBytes/Validate directly.
func YAMLToJSON(source []byte) ([]byte, error) {
	var generic any
	if err := yaml.Unmarshal(source, &generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

func isValidUTF8(data []byte) bool {
	return utf8.Valid(data)
}
