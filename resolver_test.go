package jsonschema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCyclicSchemaViaRef(t *testing.T) {
	// A classic recursive "tree node" schema: a node's "children" are each
	// validated against the node schema itself, via a self-$ref. This must
	// compile and validate without infinite recursion on the compiler side
	// (cyclic references are only a problem for an unboundedly deep
	// instance, not for the schema graph itself).
	schema, err := Compile(`{
		"definitions": {
			"node": {
				"type": "object",
				"properties": {
					"value": {"type": "integer"},
					"children": {"type": "array", "items": {"$ref": "#/definitions/node"}}
				},
				"required": ["value"]
			}
		},
		"$ref": "#/definitions/node"
	}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, `{"value":1,"children":[{"value":2,"children":[]},{"value":3}]}`))
	assert.NotNil(t, Validate(schema, `{"value":1,"children":[{"children":[]}]}`))
}

func TestUnresolvedRefIsCompileError(t *testing.T) {
	_, err := Compile(`{"$ref":"#/definitions/missing"}`)
	require.NotNil(t, err)
	assert.Equal(t, "ref_unresolved", err.Errors[0].Code)
}

func TestRefResolvesPercentEscapedPropertyName(t *testing.T) {
	// "a%b" as a definitions key registers under the percent-escaped path
	// "/definitions/a%25b"; a $ref must spell that same escape to resolve it.
	schema, err := Compile(`{"definitions":{"a%b":{"type":"integer"}},"$ref":"#/definitions/a%25b"}`)
	require.Nil(t, err)

	assert.Nil(t, Validate(schema, "1"))
	assert.NotNil(t, Validate(schema, `"x"`))
}

type stubFetcher struct {
	docs map[string][]byte
}

func (f *stubFetcher) Fetch(uri string) ([]byte, error) {
	if doc, ok := f.docs[uri]; ok {
		return doc, nil
	}
	return nil, errors.New("not found")
}

func TestCompilerWithoutFetcherFailsRemoteRef(t *testing.T) {
	compiler := &Compiler{formats: newFormatRegistry()}
	compiler.resolver = NewRefResolver(nil)
	_, err := compiler.Compile(`{"$id":"https://example.com/schema","$ref":"https://example.com/other#/definitions/x"}`)
	require.NotNil(t, err)
	assert.Equal(t, "ref_unresolved", err.Errors[0].Code)
}

func TestCompilerWithFetcherResolvesRemoteRef(t *testing.T) {
	compiler := NewCompiler().WithFetcher(&stubFetcher{docs: map[string][]byte{
		"https://example.com/other": []byte(`{"definitions":{"x":{"type":"integer"}},"$id":"https://example.com/other"}`),
	}})
	schema, err := compiler.Compile(`{"$id":"https://example.com/schema","$ref":"https://example.com/other#/definitions/x"}`)
	require.Nil(t, err)
	assert.Nil(t, compiler.Validate(schema, "1"))
	assert.NotNil(t, compiler.Validate(schema, `"s"`))
}

func TestRefResolverFetchRemoteUsesFetcherAndCaches(t *testing.T) {
	fetcher := &stubFetcher{docs: map[string][]byte{
		"https://example.com/other": []byte(`{"type":"integer"}`),
	}}
	resolver := NewRefResolver(fetcher)

	doc, err := resolver.fetchRemote("https://example.com/other")
	require.NoError(t, err)
	typeVal, ok := doc.Get("type")
	require.True(t, ok)
	assert.Equal(t, "integer", typeVal.Str)

	// Second fetch is served from the cache, not the fetcher, so removing
	// the document from the stub doesn't break it.
	delete(fetcher.docs, "https://example.com/other")
	doc2, err2 := resolver.fetchRemote("https://example.com/other")
	require.NoError(t, err2)
	assert.Same(t, doc, doc2)
}

func TestRefResolverNoFetcherConfigured(t *testing.T) {
	resolver := NewRefResolver(nil)
	_, err := resolver.fetchRemote("https://example.com/other")
	assert.ErrorIs(t, err, ErrNoFetcher)
}
