package jsonschema

import (
	"embed"
	"sync"
)

//go:embed schemas/draft7.json
var metaSchemaFS embed.FS

var (
	metaSchemaOnce   sync.Once
	metaSchemaValue  *Schema
	metaSchemaErr    *ValidationError
)

// metaSchema lazily compiles the embedded Draft 7 meta-schema exactly once
// and caches the result; every ValidateSchemaDocument call after the first
// reuses it.
func metaSchema() (*Schema, *ValidationError) {
	metaSchemaOnce.Do(func() {
		data, err := metaSchemaFS.ReadFile("schemas/draft7.json")
		if err != nil {
			metaSchemaErr = singleError("meta_schema_unreadable", err.Error(), UnknownPosition)
			return
		}
		doc, perr := parseDocument(string(data), false)
		if perr != nil {
			metaSchemaErr = perr
			return
		}
		resolver := NewRefResolver(nil)
		// isMeta=true: compiling the meta-schema must not try to validate
		// its own "$schema" value against itself, which would recurse
		// through this same lazy initializer before metaSchemaOnce.Do
		// returns.
		schema, cerr := compile(doc, nil, resolver, "", "", true)
		if cerr != nil {
			metaSchemaErr = cerr
			return
		}
		if refErr := resolver.validateAllRefs(); refErr != nil {
			metaSchemaErr = refErr
			return
		}
		metaSchemaValue = schema
	})
	return metaSchemaValue, metaSchemaErr
}

// validateAgainstMetaSchema checks a just-compiled root schema document
// (boolean or object) against the embedded Draft 7 meta-schema, the check
// Compile performs automatically unless compiling the meta-schema itself.
// A meta-schema load failure and a meta-schema validation failure are both
// reported as compile errors; the latter under a distinct code so a caller
// can tell "this document is not valid Draft 7" from an ordinary keyword
// compile error.
func validateAgainstMetaSchema(doc *Value) *ValidationError {
	meta, err := metaSchema()
	if err != nil {
		return err
	}
	verr := meta.Validate(doc)
	if verr == nil {
		return nil
	}
	var wrapped *ValidationError
	for _, issue := range verr.Errors {
		wrapped = addIssue(wrapped, "meta_schema_violation",
			"schema document is invalid against the Draft 7 meta-schema: "+issue.Message, issue.Pos)
	}
	return wrapped
}

// ValidateSchemaDocument parses source as JSON and checks that it is itself
// a well-formed Draft 7 schema document, by validating it as an ordinary
// instance against the Draft 7 meta-schema. This catches structural
// mistakes (e.g. "type": 5, or "required" not an array) that would
// otherwise only surface as a confusing compile error deep inside a
// specific keyword compiler.
func ValidateSchemaDocument(source string) *ValidationError {
	meta, err := metaSchema()
	if err != nil {
		return err
	}
	doc, perr := parseDocument(source, false)
	if perr != nil {
		return perr
	}
	return meta.Validate(doc)
}
