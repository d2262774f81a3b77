package introspect

import (
	"reflect"
	"strings"
)

// Shape classifies a resolved value. Absence is a first-class outcome: most
// candidate members do not exist on most host versions, so "nothing there"
// flows through the same channel as real values.
type Shape int

const (
	ShapeAbsent Shape = iota
	ShapeNumber
	ShapeText
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeNumber:
		return "number"
	case ShapeText:
		return "text"
	case ShapeObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the typed result of invoking a located member.
type Value struct {
	shape Shape
	num   int64
	text  string
	obj   any
}

// Absent returns the empty value.
func Absent() Value {
	return Value{}
}

// Number wraps a 64-bit numeric result.
func Number(n int64) Value {
	return Value{shape: ShapeNumber, num: n}
}

// Text wraps a textual result.
func Text(s string) Value {
	return Value{shape: ShapeText, text: s}
}

// Object wraps an opaque object result.
func Object(v any) Value {
	return Value{shape: ShapeObject, obj: v}
}

// Shape reports the value's classification.
func (v Value) Shape() Shape {
	return v.shape
}

// Int64 returns the numeric payload if the value is a number.
func (v Value) Int64() (int64, bool) {
	if v.shape != ShapeNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the textual payload if the value is text.
func (v Value) Text() (string, bool) {
	if v.shape != ShapeText {
		return "", false
	}
	return v.text, true
}

// Object returns the opaque payload if the value is an object.
func (v Value) Object() (any, bool) {
	if v.shape != ShapeObject {
		return nil, false
	}
	return v.obj, true
}

// classify maps a raw reflect result onto a Value. Integer kinds of any
// width collapse to int64; nil pointers and nil interfaces are absent.
func classify(rv reflect.Value) Value {
	if !rv.IsValid() {
		return Absent()
	}
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Absent()
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(int64(rv.Uint()))
	case reflect.String:
		return Text(rv.String())
	case reflect.Pointer:
		if rv.IsNil() {
			return Absent()
		}
	}

	if !rv.CanInterface() {
		return Absent()
	}
	return Object(rv.Interface())
}

// ShapeCheck validates that a resolved value has the kind a pipeline
// expects before the cascade accepts it as final.
type ShapeCheck func(Value) bool

// ShapeIsNumber accepts any 64-bit numeric result.
func ShapeIsNumber(v Value) bool {
	return v.shape == ShapeNumber
}

// ShapeIsText accepts non-empty text that does not carry an '@' identity
// marker. The marker filter is a best-effort guard against default
// object representations leaking through as version names.
func ShapeIsText(v Value) bool {
	return v.shape == ShapeText && v.text != "" && !strings.Contains(v.text, "@")
}

// ShapeIsObject accepts any opaque object result.
func ShapeIsObject(v Value) bool {
	return v.shape == ShapeObject
}
