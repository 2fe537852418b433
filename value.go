package jsonschema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// member is one (key, value) pair of an object, keeping the key's own Value
// (and therefore its own source position) so error messages can point at
// the key location.
type member struct {
	Key   *Value
	Value *Value
}

// Value is the tagged-union result of parsing: every JSON value parsed from
// source (schema or instance) becomes one of these, carrying the source
// position it started at. Equality (Equal) ignores position.
type Value struct {
	Kind     Kind
	Bool     bool
	Int      int64
	Flt      float64
	Str      string
	Elements []*Value
	Members  []member
	index    map[string]int // key -> index into Members, built on insert
	Pos      Position
}

func newValue(kind Kind, pos Position) *Value {
	return &Value{Kind: kind, Pos: pos}
}

// NewNull, NewBool, ... are convenience constructors for building values
// that have no source position (their Pos is UnknownPosition), e.g. in tests.
func NewNull() *Value  { return &Value{Kind: KindNull, Pos: UnknownPosition} }
func NewBool(b bool) *Value {
	return &Value{Kind: KindBoolean, Bool: b, Pos: UnknownPosition}
}
func NewString(s string) *Value {
	return &Value{Kind: KindString, Str: s, Pos: UnknownPosition}
}
func NewInteger(i int64) *Value {
	return &Value{Kind: KindInteger, Int: i, Pos: UnknownPosition}
}
func NewFloat(f float64) *Value {
	return &Value{Kind: KindFloat, Flt: f, Pos: UnknownPosition}
}
func NewArray(elems ...*Value) *Value {
	return &Value{Kind: KindArray, Elements: elems, Pos: UnknownPosition}
}
func NewObject() *Value {
	return &Value{Kind: KindObject, Pos: UnknownPosition}
}

// Set inserts or overwrites a key. Draft 7 / this engine's parser is
// last-wins on duplicate object keys; Set preserves that by overwriting the
// value in place at the key's first-seen position when it already exists.
func (v *Value) Set(key *Value, value *Value) {
	if v.index == nil {
		v.index = make(map[string]int, len(v.Members))
		for i, m := range v.Members {
			v.index[m.Key.Str] = i
		}
	}
	if i, ok := v.index[key.Str]; ok {
		v.Members[i] = member{Key: key, Value: value}
		return
	}
	v.index[key.Str] = len(v.Members)
	v.Members = append(v.Members, member{Key: key, Value: value})
}

// Get looks up a member by key name, returning (value, true) if present.
func (v *Value) Get(key string) (*Value, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	if v.index == nil {
		for _, m := range v.Members {
			if m.Key.Str == key {
				return m.Value, true
			}
		}
		return nil, false
	}
	if i, ok := v.index[key]; ok {
		return v.Members[i].Value, true
	}
	return nil, false
}

// Keys returns the object's keys in insertion order.
func (v *Value) Keys() []string {
	keys := make([]string, len(v.Members))
	for i, m := range v.Members {
		keys[i] = m.Key.Str
	}
	return keys
}

// IsNumber reports whether the value is an Integer or a Float.
func (v *Value) IsNumber() bool { return v.Kind == KindInteger || v.Kind == KindFloat }

// NumberValue returns the value as a float64 regardless of whether it was
// parsed as an Integer or a Float.
func (v *Value) NumberValue() float64 {
	if v.Kind == KindInteger {
		return float64(v.Int)
	}
	return v.Flt
}

// Len reports the scalar length of a string (rune count), the element
// count of an array, or the member count of an object. Other kinds return 0.
func (v *Value) Len() int {
	switch v.Kind {
	case KindString:
		return len([]rune(v.Str))
	case KindArray:
		return len(v.Elements)
	case KindObject:
		return len(v.Members)
	default:
		return 0
	}
}

// Equal implements structural equality: same variant and payload,
// recursively, ignoring source position. Numeric equality is
// variant-sensitive: an Integer(1) and a Float(1.0) are NOT equal. Objects
// are equal when their key sets coincide and corresponding values are
// equal (member order does not matter); arrays require same length and
// positional equality.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.Bool == other.Bool
	case KindInteger:
		return v.Int == other.Int
	case KindFloat:
		return v.Flt == other.Flt
	case KindString:
		return v.Str == other.Str
	case KindArray:
		if len(v.Elements) != len(other.Elements) {
			return false
		}
		for i := range v.Elements {
			if !v.Elements[i].Equal(other.Elements[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Members) != len(other.Members) {
			return false
		}
		for _, m := range v.Members {
			ov, ok := other.Get(m.Key.Str)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// canonicalKey produces a string that is equal for two Values iff Equal
// would report them equal, used to bucket values by structural equality in
// O(1) maps (enum membership, uniqueItems duplicate detection) instead of
// pairwise O(n^2) comparisons on the hot path.
func canonicalKey(v *Value) string {
	var b strings.Builder
	writeCanonicalKey(&b, v)
	return b.String()
}

func writeCanonicalKey(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("n:")
		return
	}
	switch v.Kind {
	case KindNull:
		b.WriteString("n:")
	case KindBoolean:
		b.WriteString("b:")
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindInteger:
		b.WriteString("i:")
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		b.WriteString("f:")
		f := v.Flt
		if f == 0 {
			f = 0 // -0 and 0 are Equal, so they share one key
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case KindString:
		b.WriteString("s:")
		b.WriteString(strconv.Quote(v.Str))
	case KindArray:
		b.WriteString("a:[")
		for i, e := range v.Elements {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonicalKey(b, e)
		}
		b.WriteByte(']')
	case KindObject:
		keys := v.Keys()
		sort.Strings(keys)
		b.WriteString("o:{")
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			val, _ := v.Get(k)
			b.WriteString(strconv.Quote(k))
			b.WriteByte(':')
			writeCanonicalKey(b, val)
		}
		b.WriteByte('}')
	}
}

// String renders the value as compact JSON text, for error messages and
// diagnostics. It does not claim round-trip fidelity for NaN/Inf, which
// cannot occur in parsed JSON.
func (v *Value) String() string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("null")
		return
	}
	switch v.Kind {
	case KindNull:
		b.WriteString("null")
	case KindBoolean:
		b.WriteString(strconv.FormatBool(v.Bool))
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.Int, 10))
	case KindFloat:
		s := strconv.FormatFloat(v.Flt, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0" // keep a whole-number Float from reparsing as an Integer
		}
		b.WriteString(s)
	case KindString:
		b.WriteString(strconv.Quote(v.Str))
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.Elements {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, e)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(m.Key.Str))
			b.WriteByte(':')
			writeJSON(b, m.Value)
		}
		b.WriteByte('}')
	default:
		b.WriteString(fmt.Sprintf("<%s>", v.Kind))
	}
}
