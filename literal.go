package cliff

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Stringify returns the display text of a cell.
//
// Numbers and booleans get their canonical text, nil becomes "null" and
// [Undefined] becomes "undefined". Every other kind is shown in its default
// Go text form: fmt.Stringer and error implementations are honored,
// everything else is printed with %v.
func Stringify(v any) string {
	return stringify(v, Classify(v))
}

func stringify(v any, kind Kind) string {
	switch kind {
	case KindNull:
		return "null"
	case KindUndefined:
		return "undefined"
	case KindNumber:
		if s, ok := formatNumber(v); ok {
			return s
		}
	case KindBoolean:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Bool {
			return strconv.FormatBool(rv.Bool())
		}
	case KindString:
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultText(v)
}

func defaultText(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func formatNumber(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), true
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), true
	default:
		// json.Number and friends carry their own text.
		return "", false
	}
}

func formatFloat(f float64, bits int) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', -1, bits)
}
