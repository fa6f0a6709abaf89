package cliff

import (
	"encoding/json"
	"reflect"
	"regexp"
	"time"
)

// Kind is the display category of a cell value.
type Kind string

const (
	KindNumber    Kind = "number"
	KindBoolean   Kind = "boolean"
	KindNull      Kind = "null"
	KindUndefined Kind = "undefined"
	KindString    Kind = "string"
	KindArray     Kind = "array"
	KindRegexp    Kind = "regexp"
	KindDate      Kind = "date"
	KindFunction  Kind = "function"
	KindObject    Kind = "object"
)

// String returns the kind name.
func (k Kind) String() string { return string(k) }

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a cell that has no value at all, such as a property
// missing from a record. It renders as "undefined"; nil renders as "null".
var Undefined any = undefined{}

type candidate struct {
	kind  Kind
	match func(reflect.Value) bool
}

// candidates is evaluated in order and every match overwrites the previous
// result, so later entries take precedence.
var candidates = []candidate{
	{KindObject, func(reflect.Value) bool { return true }},
	{KindArray, func(v reflect.Value) bool {
		return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
	}},
	{KindString, func(v reflect.Value) bool { return v.Kind() == reflect.String }},
	{KindRegexp, func(v reflect.Value) bool {
		t := v.Type()
		return t == regexpType || t == reflect.PointerTo(regexpType)
	}},
	{KindNumber, func(v reflect.Value) bool {
		return isNumeric(v.Kind()) || v.Type() == jsonNumberType
	}},
	{KindFunction, func(v reflect.Value) bool { return v.Kind() == reflect.Func }},
	{KindBoolean, func(v reflect.Value) bool { return v.Kind() == reflect.Bool }},
	{KindDate, func(v reflect.Value) bool {
		t := v.Type()
		return t == timeType || t == reflect.PointerTo(timeType)
	}},
}

var (
	regexpType     = reflect.TypeFor[regexp.Regexp]()
	timeType       = reflect.TypeFor[time.Time]()
	jsonNumberType = reflect.TypeFor[json.Number]()
)

// Classify reports the display kind of v.
//
// Predeclared Go types map straight to number, boolean and string. Every
// other value is tested against an ordered candidate list (object, array,
// string, regexp, number, function, boolean, date) and the last candidate
// that matches wins. A time.Time is both an object and a date and so
// classifies as date; a json.Number is both a string and a number and so
// classifies as number.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case undefined:
		return KindUndefined
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumber
	case bool:
		return KindBoolean
	case string:
		return KindString
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return KindNull
	}
	var kind Kind
	for _, c := range candidates {
		if c.match(rv) {
			kind = c.kind
		}
	}
	return kind
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
