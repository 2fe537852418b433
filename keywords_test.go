package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOfRequiresEveryBranch(t *testing.T) {
	schema, err := Compile(`{"allOf":[{"type":"integer"},{"minimum":0}]}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, "5"))
	assert.NotNil(t, Validate(schema, "-5"))
	assert.NotNil(t, Validate(schema, "1.5"))
}

func TestAnyOfRequiresAtLeastOneBranch(t *testing.T) {
	schema, err := Compile(`{"anyOf":[{"type":"string"},{"type":"integer"}]}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `"hi"`))
	assert.Nil(t, Validate(schema, "5"))
	assert.NotNil(t, Validate(schema, "1.5"))
}

func TestNotRejectsMatchingInstance(t *testing.T) {
	schema, err := Compile(`{"not":{"type":"string"}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, "5"))
	assert.NotNil(t, Validate(schema, `"x"`))
}

func TestIfThenElse(t *testing.T) {
	schema, err := Compile(`{
		"if": {"properties": {"kind": {"const": "circle"}}},
		"then": {"required": ["radius"]},
		"else": {"required": ["width", "height"]}
	}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `{"kind":"circle","radius":1}`))
	assert.NotNil(t, Validate(schema, `{"kind":"circle"}`))
	assert.Nil(t, Validate(schema, `{"kind":"square","width":1,"height":1}`))
	assert.NotNil(t, Validate(schema, `{"kind":"square"}`))
}

func TestDependenciesPropertyList(t *testing.T) {
	schema, err := Compile(`{"dependencies":{"credit_card":["billing_address"]}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `{"name":"a"}`))
	assert.Nil(t, Validate(schema, `{"credit_card":"1","billing_address":"x"}`))
	assert.NotNil(t, Validate(schema, `{"credit_card":"1"}`))
}

func TestDependenciesSchemaForm(t *testing.T) {
	schema, err := Compile(`{"dependencies":{"credit_card":{"required":["billing_address"]}}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `{"credit_card":"1","billing_address":"x"}`))
	assert.NotNil(t, Validate(schema, `{"credit_card":"1"}`))
}

func TestPatternProperties(t *testing.T) {
	schema, err := Compile(`{"patternProperties":{"^S_":{"type":"string"},"^I_":{"type":"integer"}}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `{"S_name":"a","I_count":1}`))
	assert.NotNil(t, Validate(schema, `{"S_name":1}`))
}

func TestAdditionalItemsTuple(t *testing.T) {
	schema, err := Compile(`{"items":[{"type":"integer"},{"type":"string"}],"additionalItems":false}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `[1,"a"]`))
	assert.NotNil(t, Validate(schema, `[1,"a",true]`))
}

func TestContains(t *testing.T) {
	schema, err := Compile(`{"contains":{"type":"integer","minimum":5}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `[1,2,5,3]`))
	assert.NotNil(t, Validate(schema, `[1,2,3]`))
}

func TestPropertyNames(t *testing.T) {
	schema, err := Compile(`{"propertyNames":{"pattern":"^[a-z]+$"}}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `{"abc":1}`))
	assert.NotNil(t, Validate(schema, `{"ABC":1}`))
}

func TestEnumAndConst(t *testing.T) {
	schema, err := Compile(`{"enum":["a","b",1,1.5]}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `"a"`))
	assert.Nil(t, Validate(schema, "1"))
	assert.NotNil(t, Validate(schema, `"c"`))

	constSchema, err2 := Compile(`{"const":42}`)
	require.Nil(t, err2)
	assert.Nil(t, Validate(constSchema, "42"))
	assert.NotNil(t, Validate(constSchema, "43"))
}

func TestMultipleOf(t *testing.T) {
	schema, err := Compile(`{"multipleOf":0.5}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, "1.5"))
	assert.NotNil(t, Validate(schema, "1.3"))
}

func TestFormatIsAnnotationOnlyByDefault(t *testing.T) {
	schema, err := Compile(`{"type":"string","format":"email"}`)
	require.Nil(t, err)
	assert.Nil(t, Validate(schema, `"not-an-email"`))
}

func TestFormatAssertedWhenEnabled(t *testing.T) {
	compiler := NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(`{"type":"string","format":"email"}`)
	require.Nil(t, err)

	assert.Nil(t, compiler.Validate(schema, `"a@b.com"`))
	assert.NotNil(t, compiler.Validate(schema, `"not-an-email"`))
}
