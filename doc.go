// Package jsonschema compiles and validates JSON Schema Draft 7 documents,
// built on a hand-written lexer and parser rather than encoding/json, so
// every compile and validation error carries the source line and column it
// came from.
//
// A schema is compiled once with Compile or CompileYAML, producing a
// *Schema that can then validate any number of instances via Validate or
// ValidateBytes. Compilation and validation both accumulate every error
// they find into a single *ValidationError rather than stopping at the
// first one.
package jsonschema
