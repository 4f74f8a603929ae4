package internal

import (
	"math"
	"strconv"
)

// ValueKind identifies the variant held by a Value.
type ValueKind uint8

// Value kinds. The zero kind is NilKind so that the zero Value is nil.
const (
	NilKind ValueKind = iota
	BoolKind
	NumberKind
	StringKind
	IdentKind
)

var valueKindNames = [...]string{"Nil", "Boolean", "Number", "String", "Identifier"}

// String returns the name of the kind as it appears in runtime errors.
func (k ValueKind) String() string {
	if int(k) >= len(valueKindNames) {
		return "ValueKind(" + strconv.Itoa(int(k)) + ")"
	}
	return valueKindNames[k]
}

// A Value is a literal value: nil, a boolean, a number, a string, or an
// identifier name. Values are immutable and compare structurally with ==.
type Value struct {
	kind ValueKind
	b    bool
	n    float64
	s    string
}

// NilValue is the language's nil. It is also the zero Value.
var NilValue Value

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: BoolKind, b: b}
}

// NumberValue returns a numeric Value.
func NumberValue(n float64) Value {
	return Value{kind: NumberKind, n: n}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: StringKind, s: s}
}

// IdentValue returns a Value holding the raw text of an identifier.
func IdentValue(name string) Value {
	return Value{kind: IdentKind, s: name}
}

// Kind returns the variant of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == BoolKind
}

// AsNumber returns the number held by v and whether v is a number.
func (v Value) AsNumber() (float64, bool) {
	return v.n, v.kind == NumberKind
}

// AsString returns the string or identifier text held by v and whether v is
// a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == StringKind
}

// String returns the printable form of v, as written by print statements.
func (v Value) String() string {
	switch v.kind {
	case BoolKind:
		if v.b {
			return "true"
		}
		return "false"
	case NumberKind:
		return formatNumber(v.n)
	case StringKind, IdentKind:
		return v.s
	default:
		return "nil"
	}
}

// Repr returns the form of v used when displaying syntax trees. It differs
// from String only in that strings are quoted.
func (v Value) Repr() string {
	if v.kind == StringKind {
		return `"` + v.s + `"`
	}
	return v.String()
}

// formatNumber formats n in the shortest decimal form that round-trips,
// without an exponent.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Truthy reports whether v counts as true in a condition. Only nil and false
// are falsy.
func Truthy(v Value) bool {
	switch v.kind {
	case NilKind:
		return false
	case BoolKind:
		return v.b
	default:
		return true
	}
}

// ValuesEqual reports whether two values are structurally equal. Nil equals
// only nil, and numbers follow IEEE 754 equality, so NaN is unequal to itself.
func ValuesEqual(a, b Value) bool {
	return a == b
}
