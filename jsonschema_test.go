package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The six concrete scenarios this engine must satisfy.

func TestScenarioIntegerBounds(t *testing.T) {
	schema, err := Compile(`{"type":"integer","minimum":0,"maximum":10}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, "5"))

	verr := Validate(schema, "11")
	require.NotNil(t, verr)
	assert.Len(t, verr.Errors, 1)

	verr = Validate(schema, `"5"`)
	require.NotNil(t, verr)
	assert.Equal(t, "type", verr.Errors[0].Code)
}

func TestScenarioUniqueItems(t *testing.T) {
	schema, err := Compile(`{"type":"array","items":{"type":"string"},"uniqueItems":true}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, `["a","b","c"]`))

	verr := Validate(schema, `["a","b","a"]`)
	require.NotNil(t, verr)
	found := false
	for _, issue := range verr.Errors {
		if issue.Code == "uniqueItems" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScenarioPropertiesRequiredAdditional(t *testing.T) {
	schema, err := Compile(`{"properties":{"n":{"type":"number"}},"required":["n"],"additionalProperties":false}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, `{"n":1}`))

	verr := Validate(schema, `{}`)
	require.NotNil(t, verr)
	assert.Equal(t, "required", verr.Errors[0].Code)

	verr = Validate(schema, `{"n":1,"x":2}`)
	require.NotNil(t, verr)
	assert.Equal(t, "additionalProperties", verr.Errors[0].Code)

	verr = Validate(schema, `{"n":"one"}`)
	require.NotNil(t, verr)
	assert.Equal(t, "type", verr.Errors[0].Code)
}

func TestScenarioRefToDefinitions(t *testing.T) {
	schema, err := Compile(`{"definitions":{"pos":{"type":"integer","minimum":1}},"$ref":"#/definitions/pos"}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, "3"))
	assert.NotNil(t, Validate(schema, "0"))
	assert.NotNil(t, Validate(schema, `"3"`))
}

func TestScenarioBooleanSchemas(t *testing.T) {
	trueSchema, err := Compile(`true`)
	require.Nil(t, err)
	assert.Nil(t, Validate(trueSchema, "null"))
	assert.Nil(t, Validate(trueSchema, `{"anything":"goes"}`))

	falseSchema, err := Compile(`false`)
	require.Nil(t, err)
	assert.NotNil(t, Validate(falseSchema, "null"))
	assert.NotNil(t, Validate(falseSchema, "1"))
}

func TestScenarioOneOfIntegerIsAlsoNumber(t *testing.T) {
	schema, err := Compile(`{"oneOf":[{"type":"integer"},{"type":"number"}]}`)
	require.Nil(t, err)

	verr := Validate(schema, "1")
	require.NotNil(t, verr)
	assert.Equal(t, "oneOf", verr.Errors[0].Code)

	assert.Nil(t, Validate(schema, "1.5"))
}

func TestCompileRejectsNonObjectNonBoolean(t *testing.T) {
	_, err := Compile(`"not a schema"`)
	require.NotNil(t, err)
}

func TestCompileBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := CompileBytes([]byte{0xff, 0xfe, 0x00})
	require.NotNil(t, err)
	assert.Equal(t, "compile_invalid_utf8", err.Errors[0].Code)
}

func TestScenarioRefToVendorContainer(t *testing.T) {
	schema, err := Compile(`{"myDefs":{"pos":{"type":"integer","minimum":1}},"$ref":"#/myDefs/pos"}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, "3"))
	assert.NotNil(t, Validate(schema, "0"))
	assert.NotNil(t, Validate(schema, `"3"`))
}

func TestCompileRunsMetaSchemaCheck(t *testing.T) {
	_, err := Compile(`{"type":5}`)
	require.NotNil(t, err)
	found := false
	for _, issue := range err.Errors {
		if issue.Code == "meta_schema_violation" {
			found = true
		}
	}
	assert.True(t, found, "expected a meta_schema_violation issue, got %+v", err.Errors)
}

func TestScenarioIntegerExcludesWholeNumberFloat(t *testing.T) {
	schema, err := Compile(`{"type":"integer"}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, "1"))
	assert.NotNil(t, Validate(schema, "1.0"))
}

func TestCompileRejectsDuplicateID(t *testing.T) {
	_, err := Compile(`{
		"properties": {
			"a": {"$id": "#dup", "type": "integer"},
			"b": {"$id": "#dup", "type": "string"}
		}
	}`)
	require.NotNil(t, err)
	found := false
	for _, issue := range err.Errors {
		if issue.Code == "compile_duplicate_id" {
			found = true
		}
	}
	assert.True(t, found, "expected a compile_duplicate_id issue, got %+v", err.Errors)
}
