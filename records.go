package cliff

import (
	"reflect"
	"strings"
)

// Fielder exposes named properties of a record. Records implementing it
// are not inspected by reflection.
type Fielder interface {
	Field(name string) (any, bool)
}

// FormatRecords renders one row per record with the given properties as
// columns. The property names form the header row; a property a record
// does not have becomes [Undefined].
//
// Records may be maps keyed by string, structs, pointers to either, or
// [Fielder] implementations. Struct fields are matched by `cliff` tag,
// then `json` tag, then field name, then field name ignoring case.
func FormatRecords[T any](records []T, properties []string, styles []string, opts ...Option) string {
	return newConfig(opts).formatRows(recordRows(records, properties), styles)
}

func recordRows[T any](records []T, properties []string) [][]any {
	rows := make([][]any, 0, len(records)+1)
	header := make([]any, len(properties))
	for i, p := range properties {
		header[i] = p
	}
	rows = append(rows, header)
	for _, record := range records {
		rows = append(rows, extract(record, properties))
	}
	return rows
}

func extract(record any, properties []string) []any {
	row := make([]any, len(properties))
	for i, p := range properties {
		row[i] = property(record, p)
	}
	return row
}

func property(record any, name string) any {
	if f, ok := record.(Fielder); ok {
		if v, ok := f.Field(name); ok {
			return v
		}
		return Undefined
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Undefined
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Undefined
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return Undefined
		}
		return v.Interface()
	case reflect.Struct:
		if idx, ok := fieldIndex(rv.Type(), name); ok {
			if v, err := rv.FieldByIndexErr(idx); err == nil && v.CanInterface() {
				return v.Interface()
			}
		}
	}
	return Undefined
}

func fieldIndex(t reflect.Type, name string) ([]int, bool) {
	fields := reflect.VisibleFields(t)
	match := func(fn func(reflect.StructField) bool) ([]int, bool) {
		for _, f := range fields {
			if f.IsExported() && !f.Anonymous && fn(f) {
				return f.Index, true
			}
		}
		return nil, false
	}
	tagged := func(key string) func(reflect.StructField) bool {
		return func(f reflect.StructField) bool {
			tag, _, _ := strings.Cut(f.Tag.Get(key), ",")
			return tag != "" && tag != "-" && tag == name
		}
	}

	if idx, ok := match(tagged("cliff")); ok {
		return idx, true
	}
	if idx, ok := match(tagged("json")); ok {
		return idx, true
	}
	if idx, ok := match(func(f reflect.StructField) bool { return f.Name == name }); ok {
		return idx, true
	}
	return match(func(f reflect.StructField) bool { return strings.EqualFold(f.Name, name) })
}
