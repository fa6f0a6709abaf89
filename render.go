package cliff

import (
	"io"
	"strings"
)

// FormatRows lays rows out as fixed-width, left-aligned columns and returns
// the lines joined by "\n" with no trailing newline.
//
// When styles is non-nil, rows[0] is the header: it is rendered first with
// styles[i] applied to cell i (the last style covers any extra cells).
// Column widths are always measured over every row, header included, before
// any styling. The caller's rows are left untouched.
func FormatRows(rows [][]any, styles []string, opts ...Option) string {
	return newConfig(opts).formatRows(rows, styles)
}

func (c *config) formatRows(rows [][]any, styles []string) string {
	widths := c.widths(ColumnMajor(rows))

	lines := make([]string, 0, len(rows))
	body := rows
	if styles != nil && len(rows) > 0 {
		lines = append(lines, c.renderRow(rows[0], widths, styles))
		body = rows[1:]
	}
	for _, row := range body {
		lines = append(lines, c.renderRow(row, widths, nil))
	}
	return strings.Join(lines, "\n")
}

// renderRow pads each cell to its column width plus spacing, minus one.
// The trailing gap after the last cell is kept.
func (c *config) renderRow(row []any, widths []int, styles []string) string {
	var sb strings.Builder
	for i, cell := range row {
		kind := Classify(cell)
		text := stringify(cell, kind)
		if styles != nil && isLiteral(kind) {
			text = c.styleCell(text, i, styles)
		}

		width := c.width(text)
		pad := c.spacing
		if i < len(widths) && width < widths[i] {
			pad = widths[i] - width + c.spacing
		}
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", max(pad-1, 0)))
	}
	return sb.String()
}

// styleCell tries the cell's own style, then the last style, then gives up.
func (c *config) styleCell(text string, i int, styles []string) string {
	if i < len(styles) {
		if s, ok := c.styler.Style(styles[i], text); ok && s != "" {
			return s
		}
	}
	if len(styles) > 0 {
		if s, ok := c.styler.Style(styles[len(styles)-1], text); ok && s != "" {
			return s
		}
	}
	return text
}

// isLiteral reports whether a kind stringifies to plain text that can carry
// a style. Composite values keep their default form unstyled.
func isLiteral(k Kind) bool {
	switch k {
	case KindNumber, KindBoolean, KindNull, KindUndefined, KindString:
		return true
	default:
		return false
	}
}

func writeColumns(w io.Writer, c *config, rows [][]any, styles []string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := io.WriteString(w, c.formatRows(rows, styles)+"\n")
	return err
}
