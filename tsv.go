package cliff

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, rows [][]any) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(textRow(row), "\t")); err != nil {
			return err
		}
	}
	return nil
}
