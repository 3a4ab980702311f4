// value.go: the runtime value model
//
// Values are a small tagged union. Two representations exist for text:
// String is runtime-built (concatenation results), StringLiteral is an
// interned handle minted at parse time so re-evaluating a literal never
// allocates. The two must behave identically wherever semantics can observe
// them (equality, concatenation, display); only identity of storage differs.
//
// Operators are partial functions: the second return value reports whether
// the operation is defined for the operand types at all. The evaluator turns
// a false into the matching RuntimeError; this file never builds errors.
package loxi

import "strconv"

// ValueTag discriminates Value variants.
type ValueTag int

const (
	VTNil ValueTag = iota
	VTBool
	VTNumber
	VTString
	VTStringLit
	VTObject
	VTFunction
	VTNativeFn
)

// Value is a runtime value. Data holds the payload for the tag: bool,
// float64, string, or Sym. Copying a Value is cheap for every variant.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Nil is the single nil value.
var Nil = Value{Tag: VTNil}

func Bool(b bool) Value             { return Value{Tag: VTBool, Data: b} }
func Number(f float64) Value        { return Value{Tag: VTNumber, Data: f} }
func Str(s string) Value            { return Value{Tag: VTString, Data: s} }
func StrLit(s Sym) Value            { return Value{Tag: VTStringLit, Data: s} }
func Object() Value                 { return Value{Tag: VTObject} }
func Function(name Sym) Value       { return Value{Tag: VTFunction, Data: name} }
func NativeFunction(name Sym) Value { return Value{Tag: VTNativeFn, Data: name} }

// Name returns the type tag used in runtime error messages.
func (v Value) Name() string {
	switch v.Tag {
	case VTNil:
		return "<nil>"
	case VTBool:
		return "<bool>"
	case VTNumber:
		return "<number>"
	case VTString, VTStringLit:
		return "<string>"
	case VTObject:
		return "<object>"
	case VTFunction, VTNativeFn:
		return "<function>"
	}
	return "<unknown>"
}

// Truthy reports the value's truthiness: nil and false are falsy,
// everything else (zero and the empty string included) is truthy.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTNil:
		return false
	case VTBool:
		return v.Data.(bool)
	default:
		return true
	}
}

// text resolves either string representation.
func (v Value) text(in *Interner) (string, bool) {
	switch v.Tag {
	case VTString:
		return v.Data.(string), true
	case VTStringLit:
		return in.MustResolve(v.Data.(Sym)), true
	}
	return "", false
}

func (v Value) num2(o Value) (float64, float64, bool) {
	if v.Tag != VTNumber || o.Tag != VTNumber {
		return 0, 0, false
	}
	return v.Data.(float64), o.Data.(float64), true
}

// ----- operators -----

// Not negates truthiness. It is the one total unary operator.
func (v Value) Not() Value { return Bool(!v.Truthy()) }

// Neg is defined for numbers only.
func (v Value) Neg() (Value, bool) {
	if v.Tag != VTNumber {
		return Value{}, false
	}
	return Number(-v.Data.(float64)), true
}

// Add adds numbers, and concatenates any mix of the two string
// representations into a fresh String. Everything else is undefined.
func (v Value) Add(o Value, in *Interner) (Value, bool) {
	if a, b, ok := v.num2(o); ok {
		return Number(a + b), true
	}
	ls, lok := v.text(in)
	rs, rok := o.text(in)
	if lok && rok {
		return Str(ls + rs), true
	}
	return Value{}, false
}

// Sub is defined for numbers only.
func (v Value) Sub(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Number(a - b), true
}

// Mul is defined for numbers only.
func (v Value) Mul(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Number(a * b), true
}

// Div is defined for numbers only. Division by zero is not an error: the
// result follows IEEE-754 (Inf, -Inf or NaN).
func (v Value) Div(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Number(a / b), true
}

func (v Value) Gt(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Bool(a > b), true
}

func (v Value) Geq(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Bool(a >= b), true
}

func (v Value) Lt(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Bool(a < b), true
}

func (v Value) Leq(o Value) (Value, bool) {
	a, b, ok := v.num2(o)
	if !ok {
		return Value{}, false
	}
	return Bool(a <= b), true
}

// Eq implements '=='. It is total: pairs outside the table below compare
// unequal rather than failing. The one exception is Object against Object,
// which no program can construct yet; reaching it is an evaluator bug.
func (v Value) Eq(o Value, in *Interner) Value {
	switch {
	case v.Tag == VTNil && o.Tag == VTNil:
		return Bool(true)
	case v.Tag == VTBool && o.Tag == VTBool:
		return Bool(v.Data.(bool) == o.Data.(bool))
	case v.Tag == VTNumber && o.Tag == VTNumber:
		return Bool(v.Data.(float64) == o.Data.(float64))
	case v.Tag == VTStringLit && o.Tag == VTStringLit:
		// one interner per run: handle equality is text equality
		return Bool(v.Data.(Sym) == o.Data.(Sym))
	case v.Tag == VTString || v.Tag == VTStringLit:
		if o.Tag == VTString || o.Tag == VTStringLit {
			ls, _ := v.text(in)
			rs, _ := o.text(in)
			return Bool(ls == rs)
		}
		return Bool(false)
	case v.Tag == VTObject && o.Tag == VTObject:
		panic("loxi: internal error: Object equality is not implemented")
	}
	return Bool(false)
}

// Neq implements '!=' as the exact negation of Eq.
func (v Value) Neq(o Value, in *Interner) Value {
	return Bool(!v.Eq(o, in).Data.(bool))
}

// Display renders the value the way the print statement shows it.
func (v Value) Display(in *Interner) string {
	switch v.Tag {
	case VTNil:
		return "nil"
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTNumber:
		return strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
	case VTString:
		return v.Data.(string)
	case VTStringLit:
		return in.MustResolve(v.Data.(Sym))
	case VTObject:
		return "<object>"
	case VTFunction:
		return "<fun " + in.MustResolve(v.Data.(Sym)) + ">"
	case VTNativeFn:
		return "<native fun " + in.MustResolve(v.Data.(Sym)) + ">"
	}
	return "<unknown>"
}
