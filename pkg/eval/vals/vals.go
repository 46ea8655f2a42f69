// Package vals contains basic facilities for Kuzur values.
//
// Kuzur is dynamically typed: every operation site checks the kinds of its
// operands at runtime. The value kinds form a closed set: number, string,
// boolean, null, and functions (defined in the eval package, since they
// reference scopes).
package vals

import (
	"math"
	"strconv"
)

// Value is implemented by all Kuzur values.
type Value interface {
	// Kind returns the name of the value's kind, such as "number".
	Kind() string
}

// Num is a Kuzur number, a double-precision float.
type Num float64

// Str is a Kuzur string. Strings are immutable.
type Str string

// Bool is a Kuzur boolean.
type Bool bool

// Nil is the Kuzur null value, the result of a function without an explicit
// return.
type Nil struct{}

func (Num) Kind() string  { return "number" }
func (Str) Kind() string  { return "string" }
func (Bool) Kind() string { return "boolean" }
func (Nil) Kind() string  { return "null" }

// Kind returns the kind of a value; "null" if v is nil.
func Kind(v Value) string {
	if v == nil {
		return Nil{}.Kind()
	}
	return v.Kind()
}

// ToString converts a value to its string form, as used by print and by
// string concatenation. Numbers with an integral value print without a
// decimal point.
func ToString(v Value) string {
	switch v := v.(type) {
	case Num:
		return FormatNum(float64(v))
	case Str:
		return string(v)
	case Bool:
		return strconv.FormatBool(bool(v))
	case Nil, nil:
		return "null"
	default:
		return "<" + v.Kind() + ">"
	}
}

// FormatNum formats a Kuzur number. The shortest representation that
// round-trips is used, so 3.0 formats as "3".
func FormatNum(f float64) string {
	if math.IsInf(f, 1) {
		return "inf"
	} else if math.IsInf(f, -1) {
		return "-inf"
	} else if math.IsNaN(f) {
		return "nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Equal returns whether two values are equal. Values of different kinds are
// never equal; functions are equal only when they are the same function.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Num:
		b, ok := b.(Num)
		return ok && a == b
	case Str:
		b, ok := b.(Str)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		// Reference kinds, i.e. functions.
		return a == b
	}
}
