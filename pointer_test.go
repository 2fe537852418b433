package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapePointerToken(t *testing.T) {
	assert.Equal(t, "a~0b", escapePointerToken("a~b"))
	assert.Equal(t, "a~1b", escapePointerToken("a/b"))
	assert.Equal(t, "~0~1", escapePointerToken("~/"))
}

func TestUnescapePointerToken(t *testing.T) {
	assert.Equal(t, "a~b", unescapePointerToken("a~0b"))
	assert.Equal(t, "a/b", unescapePointerToken("a~1b"))
}

func TestBuildAndSplitPointer(t *testing.T) {
	ptr := buildPointer([]string{"definitions", "a/b"})
	assert.Equal(t, "/definitions/a~1b", ptr)
	assert.Equal(t, []string{"definitions", "a/b"}, splitPointer(ptr))
}

func TestResolvePointer(t *testing.T) {
	doc, err := parseDocument(`{"definitions": {"pos": {"type": "integer"}}, "list": [10, 20]}`, false)
	require.Nil(t, err)

	v, ok := resolvePointer(doc, "/definitions/pos/type")
	require.True(t, ok)
	assert.Equal(t, "integer", v.Str)

	v, ok = resolvePointer(doc, "/list/1")
	require.True(t, ok)
	assert.Equal(t, int64(20), v.Int)

	_, ok = resolvePointer(doc, "/missing")
	assert.False(t, ok)
}

func TestPercentEscapeFragment(t *testing.T) {
	assert.Equal(t, "/a%25b", percentEscapeFragment("/a%b"))
}
