// value_test.go
package loxi

import (
	"math"
	"testing"
)

func Test_Value_TypeNames(t *testing.T) {
	in := NewInterner()
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "<nil>"},
		{Bool(true), "<bool>"},
		{Number(1), "<number>"},
		{Str("x"), "<string>"},
		{StrLit(in.Intern("x")), "<string>"},
		{Object(), "<object>"},
		{Function(in.Intern("f")), "<function>"},
		{NativeFunction(in.Intern("clock")), "<function>"},
	}
	for _, c := range cases {
		if got := c.v.Name(); got != c.want {
			t.Fatalf("Name of %#v: want %q, got %q", c.v, c.want, got)
		}
	}
}

func Test_Value_Truthiness(t *testing.T) {
	in := NewInterner()
	falsy := []Value{Nil, Bool(false)}
	truthy := []Value{
		Bool(true), Number(0), Number(1), Str(""), StrLit(in.Intern("")),
		Object(), Function(in.Intern("f")), NativeFunction(in.Intern("clock")),
	}

	for _, v := range falsy {
		if v.Truthy() {
			t.Fatalf("%#v should be falsy", v)
		}
	}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Fatalf("%#v should be truthy", v)
		}
	}
}

func Test_Value_Not_IsTotal(t *testing.T) {
	if got := Nil.Not(); got.Data.(bool) != true {
		t.Fatalf("!nil should be true, got %#v", got)
	}
	if got := Number(0).Not(); got.Data.(bool) != false {
		t.Fatalf("!0 should be false (zero is truthy), got %#v", got)
	}
	if got := Str("").Not(); got.Data.(bool) != false {
		t.Fatalf("!\"\" should be false (empty string is truthy), got %#v", got)
	}
}

func Test_Value_Neg_NumbersOnly(t *testing.T) {
	v, ok := Number(2.5).Neg()
	if !ok || v.Data.(float64) != -2.5 {
		t.Fatalf("-2.5: got %#v ok=%v", v, ok)
	}
	if _, ok := Str("x").Neg(); ok {
		t.Fatalf("negating a string should fail")
	}
	if _, ok := Nil.Neg(); ok {
		t.Fatalf("negating nil should fail")
	}
}

func Test_Value_Add_Numbers_And_Strings(t *testing.T) {
	in := NewInterner()

	v, ok := Number(1).Add(Number(2), in)
	if !ok || v.Data.(float64) != 3 {
		t.Fatalf("1+2: got %#v ok=%v", v, ok)
	}

	// Concatenation accepts both string representations on either side.
	lit := StrLit(in.Intern("foo"))
	cases := []struct{ l, r Value }{
		{Str("foo"), Str("bar")},
		{Str("foo"), StrLit(in.Intern("bar"))},
		{lit, Str("bar")},
		{lit, StrLit(in.Intern("bar"))},
	}
	for _, c := range cases {
		v, ok := c.l.Add(c.r, in)
		if !ok || v.Tag != VTString || v.Data.(string) != "foobar" {
			t.Fatalf("concat %#v + %#v: got %#v ok=%v", c.l, c.r, v, ok)
		}
	}

	// Mixing a number with a string fails in both directions.
	if _, ok := Number(1).Add(Str("x"), in); ok {
		t.Fatalf("1 + \"x\" should fail")
	}
	if _, ok := Str("x").Add(Number(1), in); ok {
		t.Fatalf("\"x\" + 1 should fail")
	}
	if _, ok := Bool(true).Add(Bool(true), in); ok {
		t.Fatalf("true + true should fail")
	}
}

func Test_Value_Sub_Mul_NumbersOnly(t *testing.T) {
	if v, ok := Number(5).Sub(Number(3)); !ok || v.Data.(float64) != 2 {
		t.Fatalf("5-3: got %#v ok=%v", v, ok)
	}
	if v, ok := Number(4).Mul(Number(2.5)); !ok || v.Data.(float64) != 10 {
		t.Fatalf("4*2.5: got %#v ok=%v", v, ok)
	}
	if _, ok := Str("a").Sub(Str("b")); ok {
		t.Fatalf("string subtraction should fail")
	}
	if _, ok := Number(1).Mul(Nil); ok {
		t.Fatalf("number * nil should fail")
	}
}

func Test_Value_Div_FollowsIEEE(t *testing.T) {
	if v, ok := Number(1).Div(Number(0)); !ok || !math.IsInf(v.Data.(float64), 1) {
		t.Fatalf("1/0 should be +Inf, got %#v ok=%v", v, ok)
	}
	if v, ok := Number(-1).Div(Number(0)); !ok || !math.IsInf(v.Data.(float64), -1) {
		t.Fatalf("-1/0 should be -Inf, got %#v ok=%v", v, ok)
	}
	if v, ok := Number(0).Div(Number(0)); !ok || !math.IsNaN(v.Data.(float64)) {
		t.Fatalf("0/0 should be NaN, got %#v ok=%v", v, ok)
	}
	if v, ok := Number(7).Div(Number(2)); !ok || v.Data.(float64) != 3.5 {
		t.Fatalf("7/2: got %#v ok=%v", v, ok)
	}
}

func Test_Value_Comparisons_NumbersOnly(t *testing.T) {
	type cmp func(Value) (Value, bool)
	one, two := Number(1), Number(2)

	cases := []struct {
		name string
		run  cmp
		want bool
	}{
		{"1 > 2", one.Gt, false},
		{"1 >= 2", one.Geq, false},
		{"1 < 2", one.Lt, true},
		{"1 <= 2", one.Leq, true},
	}
	for _, c := range cases {
		v, ok := c.run(two)
		if !ok || v.Data.(bool) != c.want {
			t.Fatalf("%s: got %#v ok=%v", c.name, v, ok)
		}
	}

	// Strings have no ordering.
	if _, ok := Str("a").Lt(Str("b")); ok {
		t.Fatalf("string ordering should fail")
	}
}

func Test_Value_Equality_Total_NoCoercion(t *testing.T) {
	in := NewInterner()

	wantEq := func(l, r Value, want bool) {
		t.Helper()
		if got := l.Eq(r, in).Data.(bool); got != want {
			t.Fatalf("%#v == %#v: want %v, got %v", l, r, want, got)
		}
		// Neq is the exact negation, never an independent opinion.
		if got := l.Neq(r, in).Data.(bool); got != !want {
			t.Fatalf("%#v != %#v: want %v", l, r, !want)
		}
	}

	wantEq(Nil, Nil, true)
	wantEq(Bool(true), Bool(true), true)
	wantEq(Bool(true), Bool(false), false)
	wantEq(Number(1), Number(1), true)
	wantEq(Number(1), Number(2), false)

	// No cross-type coercion.
	wantEq(Nil, Bool(false), false)
	wantEq(Number(0), Bool(false), false)
	wantEq(Number(1), Str("1"), false)

	// Both string representations compare by text.
	a := StrLit(in.Intern("a"))
	wantEq(a, StrLit(in.Intern("a")), true)
	wantEq(a, StrLit(in.Intern("b")), false)
	wantEq(a, Str("a"), true)
	wantEq(Str("a"), a, true)
	wantEq(Str("a"), Str("a"), true)
}

func Test_Value_Display_Forms(t *testing.T) {
	in := NewInterner()
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(1), "1"},
		{Number(12.5), "12.5"},
		{Number(1e21), "1e+21"},
		{Str("plain, no quotes"), "plain, no quotes"},
		{StrLit(in.Intern("shared")), "shared"},
		{Object(), "<object>"},
		{Function(in.Intern("f")), "<fun f>"},
		{NativeFunction(in.Intern("clock")), "<native fun clock>"},
	}
	for _, c := range cases {
		if got := c.v.Display(in); got != c.want {
			t.Fatalf("Display of %#v: want %q, got %q", c.v, c.want, got)
		}
	}
}
