// Package cliff lays out mixed-type tabular data as aligned, fixed-width
// text columns for the terminal, with optional per-column colors on a
// header row.
//
// The central entry points are [FormatRows] and [FormatRecords]. Cells are
// arbitrary values; each is classified ([Classify]), turned into text
// ([Stringify]) and measured ([VisualWidth]) so that color escape codes and
// non-ASCII characters do not disturb alignment.
//
//	rows := [][]any{
//		{"Name", "Flavor", "Dessert"},
//		{"Alice", "cherry", regexp.MustCompile(`^aa`)},
//		{"Bob", "carmel", cliff.Undefined},
//		{"Joe", "chocolate", nil},
//	}
//	fmt.Println(cliff.FormatRows(rows, []string{"red", "blue", "green"}))
//
// # Header Styling
//
// Passing a non-nil styles slice marks rows[0] as the header. Cell i of the
// header is styled with styles[i]; when styles is shorter than the header,
// or a name does not resolve, the last style is tried, then plain text.
// Widths are measured on unstyled text over every row, header included.
//
// Style names resolve through a [Styler]. The default is [DefaultTheme], a
// [Theme] created once per process that understands color names, modifiers,
// "rainbow", and the log-level aliases (info, warn, error, data, ...).
//
// # Layout
//
// Every cell is followed by (width - cellWidth + spacing - 1) spaces, where
// spacing defaults to [DefaultColumnSpacing]. Lines are joined with "\n"
// and carry no trailing newline.
//
// # Records
//
// [FormatRecords] projects maps, structs or [Fielder] values onto a list of
// property names, which become the header row. Missing properties render as
// "undefined".
//
// # Logging
//
// [LogRows] and [LogRecords] send each formatted line to a [Sink] tagged
// with a level name. [ConsoleSink] is the default; [LogrusSink] and
// [SlogSink] forward to structured loggers.
//
// # Other Formats
//
// [Write] renders the same rows as columns, CSV, TSV, Markdown, JSON or
// YAML. Use [ParseFormat] to convert a flag value into a [Format].
//
// # Errors
//
// Formatting itself never fails. [Write] returns writer errors and:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrMissingHeader]: Markdown without a designated header row
package cliff
