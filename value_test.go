package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqualIgnoresPosition(t *testing.T) {
	a := &Value{Kind: KindInteger, Int: 5, Pos: Position{Line: 1, Column: 2}}
	b := &Value{Kind: KindInteger, Int: 5, Pos: Position{Line: 9, Column: 9}}
	assert.True(t, a.Equal(b))
}

func TestValueIntegerAndFloatAreNotEqual(t *testing.T) {
	// Known divergence from the mathematically-equal-numbers reading of
	// Draft 7: this engine's enum/const/uniqueItems equality distinguishes
	// the integer and float variants of the same numeric value.
	i := NewInteger(1)
	f := NewFloat(1.0)
	assert.False(t, i.Equal(f))
	assert.NotEqual(t, canonicalKey(i), canonicalKey(f))
}

func TestValueObjectEqualityIgnoresMemberOrder(t *testing.T) {
	a := NewObject()
	a.Set(NewString("x"), NewInteger(1))
	a.Set(NewString("y"), NewInteger(2))

	b := NewObject()
	b.Set(NewString("y"), NewInteger(2))
	b.Set(NewString("x"), NewInteger(1))

	assert.True(t, a.Equal(b))
	assert.Equal(t, canonicalKey(a), canonicalKey(b))
}

func TestValueSetOverwritesDuplicateKey(t *testing.T) {
	obj := NewObject()
	obj.Set(NewString("k"), NewInteger(1))
	obj.Set(NewString("k"), NewInteger(2))
	require := assert.New(t)
	require.Len(obj.Members, 1)
	v, ok := obj.Get("k")
	require.True(ok)
	require.Equal(int64(2), v.Int)
}

func TestValueLen(t *testing.T) {
	assert.Equal(t, 3, NewString("abc").Len())
	assert.Equal(t, 2, NewArray(NewNull(), NewNull()).Len())
}
