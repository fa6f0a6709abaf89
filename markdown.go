package cliff

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown(w io.Writer, c *config, rows [][]any, header bool) error {
	if len(rows) == 0 {
		return nil
	}
	if !header {
		return fmt.Errorf("%w: format %q requires a header row", ErrMissingHeader, Markdown)
	}

	// Minimum 3 for the separator dashes.
	widths := c.widths(ColumnMajor(rows))
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, c, rows[0], widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, c, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, c *config, row []any, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = strings.ReplaceAll(Stringify(row[i]), "|", `\|`)
		}
		padded[i] = cell + strings.Repeat(" ", max(width-c.width(cell), 0))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
