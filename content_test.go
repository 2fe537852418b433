package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeContentBase64(t *testing.T) {
	schema, err := Compile(`{"type":"string","contentEncoding":"base64"}`)
	require.Nil(t, err)

	instance, perr := parseDocument(`"aGVsbG8="`, false)
	require.Nil(t, perr)

	// contentEncoding is annotation-only: Validate does not decode the
	// payload; DecodeContent is the separate, opt-in decode step.
	assert.Nil(t, schema.Validate(instance))

	data, ok := schema.DecodeContent(instance)
	require.True(t, ok)
	assert.Equal(t, "hello", string(data))
}

func TestContentMediaType(t *testing.T) {
	schema, err := Compile(`{"contentMediaType":"application/json"}`)
	require.Nil(t, err)
	assert.Equal(t, "application/json", schema.ContentMediaType())
}
