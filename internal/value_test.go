package internal

import (
	"math"
	"testing"
)

// TestTruthy tests that only nil and false are falsy.
func TestTruthy(t *testing.T) {
	cases := map[string]struct {
		v    Value
		want bool
	}{
		"Nil":         {NilValue, false},
		"False":       {BoolValue(false), false},
		"True":        {BoolValue(true), true},
		"Zero":        {NumberValue(0), true},
		"NaN":         {NumberValue(math.NaN()), true},
		"EmptyString": {StringValue(""), true},
		"Ident":       {IdentValue("x"), true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Truthy(c.v); got != c.want {
				t.Errorf("wrong truthiness of %s: want %t, have %t", c.v.Repr(), c.want, got)
			}
		})
	}
}

// TestValuesEqual tests structural equality between values.
func TestValuesEqual(t *testing.T) {
	cases := map[string]struct {
		a, b Value
		want bool
	}{
		"NilNil":         {NilValue, NilValue, true},
		"NilZero":        {NilValue, NumberValue(0), false},
		"NilFalse":       {NilValue, BoolValue(false), false},
		"NilEmpty":       {NilValue, StringValue(""), false},
		"Numbers":        {NumberValue(1.5), NumberValue(1.5), true},
		"NumbersDiffer":  {NumberValue(1), NumberValue(2), false},
		"SignedZeros":    {NumberValue(0), NumberValue(math.Copysign(0, -1)), true},
		"NaN":            {NumberValue(math.NaN()), NumberValue(math.NaN()), false},
		"Strings":        {StringValue("a"), StringValue("a"), true},
		"StringsDiffer":  {StringValue("a"), StringValue("b"), false},
		"StringNumber":   {StringValue("1"), NumberValue(1), false},
		"Bools":          {BoolValue(true), BoolValue(true), true},
		"BoolsDiffer":    {BoolValue(true), BoolValue(false), false},
		"StringVsIdent":  {StringValue("x"), IdentValue("x"), false},
		"ZeroValueIsNil": {Value{}, NilValue, true},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := ValuesEqual(c.a, c.b); got != c.want {
				t.Errorf("wrong equality of %s and %s: want %t, have %t", c.a.Repr(), c.b.Repr(), c.want, got)
			}
		})
	}
}

// TestValueString tests the printed and displayed forms of values.
func TestValueString(t *testing.T) {
	cases := map[string]struct {
		v         Value
		str, repr string
	}{
		"Nil":      {NilValue, "nil", "nil"},
		"True":     {BoolValue(true), "true", "true"},
		"False":    {BoolValue(false), "false", "false"},
		"Int":      {NumberValue(1), "1", "1"},
		"Frac":     {NumberValue(45.67), "45.67", "45.67"},
		"Negative": {NumberValue(-3.5), "-3.5", "-3.5"},
		"Large":    {NumberValue(1e21), "1000000000000000000000", "1000000000000000000000"},
		"Inf":      {NumberValue(math.Inf(1)), "inf", "inf"},
		"NegInf":   {NumberValue(math.Inf(-1)), "-inf", "-inf"},
		"NaN":      {NumberValue(math.NaN()), "NaN", "NaN"},
		"String":   {StringValue("hello"), "hello", `"hello"`},
		"Ident":    {IdentValue("x"), "x", "x"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := c.v.String(); got != c.str {
				t.Errorf("wrong String: want %q, have %q", c.str, got)
			}
			if got := c.v.Repr(); got != c.repr {
				t.Errorf("wrong Repr: want %q, have %q", c.repr, got)
			}
		})
	}
}

// TestValueKindNames tests the kind names used in runtime errors.
func TestValueKindNames(t *testing.T) {
	cases := map[ValueKind]string{
		NilKind:        "Nil",
		BoolKind:       "Boolean",
		NumberKind:     "Number",
		StringKind:     "String",
		IdentKind:      "Identifier",
		ValueKind(100): "ValueKind(100)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("wrong name for kind %d: want %q, have %q", k, want, got)
		}
	}
}
