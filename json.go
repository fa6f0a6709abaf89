package cliff

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, rows [][]any, header bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(rows, header))
}

// records converts rows into encodable values: header-keyed objects when a
// header is designated, plain arrays otherwise.
func records(rows [][]any, header bool) []any {
	out := []any{}
	if !header {
		for _, row := range rows {
			out = append(out, dataRow(row))
		}
		return out
	}
	if len(rows) == 0 {
		return out
	}
	keys := textRow(rows[0])
	for _, row := range rows[1:] {
		obj := make(map[string]any, len(keys))
		for j, key := range keys {
			if j < len(row) {
				obj[key] = dataValue(row[j])
			} else {
				obj[key] = nil
			}
		}
		out = append(out, obj)
	}
	return out
}

func dataRow(row []any) []any {
	out := make([]any, len(row))
	for i, cell := range row {
		out[i] = dataValue(cell)
	}
	return out
}

// dataValue keeps numbers and booleans typed and stringifies everything
// else; null and undefined both encode as null.
func dataValue(v any) any {
	switch kind := Classify(v); kind {
	case KindNull, KindUndefined:
		return nil
	case KindNumber:
		s := stringify(v, kind)
		if json.Valid([]byte(s)) {
			return json.Number(s)
		}
		return s
	case KindBoolean:
		return stringify(v, kind) == "true"
	default:
		return stringify(v, kind)
	}
}
