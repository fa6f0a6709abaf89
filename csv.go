package cliff

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(textRow(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func textRow(row []any) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = Stringify(cell)
	}
	return out
}
