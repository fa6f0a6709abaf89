package cliff

// ColumnMajor transposes row-major cells into column-major form. Column i holds
// the i-th cell of every row long enough to have one, in row order; shorter
// rows contribute nothing and no placeholders are inserted.
func ColumnMajor(rows [][]any) [][]any {
	var columns [][]any
	for _, row := range rows {
		for i, cell := range row {
			if i == len(columns) {
				columns = append(columns, nil)
			}
			columns[i] = append(columns[i], cell)
		}
	}
	return columns
}

// Widths returns the widest stringified cell of each column. An empty
// column has width 0.
func Widths(columns [][]any, opts ...Option) []int {
	return newConfig(opts).widths(columns)
}

func (c *config) widths(columns [][]any) []int {
	widths := make([]int, len(columns))
	for i, column := range columns {
		for _, cell := range column {
			if w := c.width(Stringify(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
