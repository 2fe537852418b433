package jsonschema

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaSchemaCompiles(t *testing.T) {
	_, err := metaSchema()
	require.Nil(t, err)
}

func TestMetaSchemaClosure(t *testing.T) {
	data, readErr := os.ReadFile("schemas/draft7.json")
	require.NoError(t, readErr)

	verr := ValidateSchemaDocument(string(data))
	assert.Nil(t, verr)
}

func TestValidateSchemaDocumentCatchesMalformedSchema(t *testing.T) {
	verr := ValidateSchemaDocument(`{"type": 5}`)
	assert.NotNil(t, verr)
}
