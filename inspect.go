package cliff

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// InspectStyles names the style used for each category of inspected
// output. An empty name leaves that category unstyled.
type InspectStyles struct {
	All     string // applied to the whole result
	Label   string // the optional label prefix
	Other   string // values without a literal form, such as funcs
	Key     string // map keys and struct field names
	Special string // null and undefined
	String  string
	Number  string
	Bool    string
	Regexp  string
}

// DefaultInspectStyles mirrors the classic console inspector palette.
var DefaultInspectStyles = InspectStyles{
	Label:   "underline",
	Other:   "inverse",
	Key:     "grey",
	Special: "grey",
	Number:  "blue",
	Bool:    "magenta",
	Regexp:  "green",
}

// Inspector renders arbitrary values as compact one-line literals for
// debugging, e.g. `{ id: 1, tags: [ 'a', 'b' ] }`.
type Inspector struct {
	Styler   Styler
	Styles   InspectStyles
	MaxDepth int
}

const defaultInspectDepth = 6

var otherConfig = spew.ConfigState{DisablePointerAddresses: true, DisableCapacities: true}

// Inspect renders v with the default inspector. A label, when given,
// prefixes the output.
func Inspect(v any, label ...string) string {
	in := Inspector{Styles: DefaultInspectStyles}
	return in.Inspect(v, label...)
}

// Inspect renders v. A label, when given, prefixes the output.
func (in Inspector) Inspect(v any, label ...string) string {
	out := in.value(reflect.ValueOf(v), v, 0)
	if len(label) > 0 && label[0] != "" {
		out = in.style(in.Styles.Label, label[0]) + ": " + out
	}
	return in.style(in.Styles.All, out)
}

func (in Inspector) style(name, text string) string {
	if name == "" {
		return text
	}
	styler := in.Styler
	if styler == nil {
		styler = DefaultTheme()
	}
	if s, ok := styler.Style(name, text); ok {
		return s
	}
	return text
}

func (in Inspector) value(rv reflect.Value, v any, depth int) string {
	kind := Classify(v)
	switch kind {
	case KindNull, KindUndefined:
		return in.style(in.Styles.Special, stringify(v, kind))
	case KindNumber:
		return in.style(in.Styles.Number, stringify(v, kind))
	case KindBoolean:
		return in.style(in.Styles.Bool, stringify(v, kind))
	case KindString:
		return in.style(in.Styles.String, quote(stringify(v, kind)))
	case KindRegexp:
		return in.style(in.Styles.Regexp, "/"+stringify(v, kind)+"/")
	case KindDate:
		return stringify(v, kind)
	case KindFunction:
		return in.style(in.Styles.Other, "[Function]")
	}

	maxDepth := in.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultInspectDepth
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if depth >= maxDepth {
		return "[...]"
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = in.element(rv.Index(i), depth)
		}
		return wrapItems("[", items, "]")
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = in.style(in.Styles.Key, fmt.Sprint(k.Interface())) + ": " + in.element(rv.MapIndex(k), depth)
		}
		return wrapItems("{", items, "}")
	case reflect.Struct:
		var items []string
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				continue
			}
			items = append(items, in.style(in.Styles.Key, f.Name)+": "+in.element(fv, depth))
		}
		return wrapItems("{", items, "}")
	default:
		return in.style(in.Styles.Other, strings.TrimSpace(otherConfig.Sprint(v)))
	}
}

func (in Inspector) element(rv reflect.Value, depth int) string {
	if !rv.CanInterface() {
		return in.style(in.Styles.Other, "?")
	}
	v := rv.Interface()
	return in.value(reflect.ValueOf(v), v, depth+1)
}

func wrapItems(open string, items []string, end string) string {
	if len(items) == 0 {
		return open + end
	}
	return open + " " + strings.Join(items, ", ") + " " + end
}

func quote(s string) string {
	q := strconv.Quote(s)
	return "'" + strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`) + "'"
}
