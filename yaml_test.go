package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndValidateYAML(t *testing.T) {
	schemaYAML := []byte(`
type: object
properties:
  name:
    type: string
required:
  - name
`)
	schema, err := CompileYAML(schemaYAML)
	require.Nil(t, err)

	assert.Nil(t, ValidateYAML(schema, []byte("name: Ada\n")))
	assert.NotNil(t, ValidateYAML(schema, []byte("age: 3\n")))
}
