package cliff

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, rows [][]any, header bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlValue(records(rows, header))); err != nil {
		return err
	}
	return enc.Close()
}

// yamlValue turns json.Number leaves into native numbers.
func yamlValue(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = yamlValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = yamlValue(item)
		}
		return out
	default:
		return v
	}
}
