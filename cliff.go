package cliff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingHeader     = errors.New("missing header row")
)

// DefaultColumnSpacing is the gap between columns when none is configured.
const DefaultColumnSpacing = 2

// Format represents an output format.
type Format string

const (
	Columns  Format = "columns"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Columns, CSV, TSV, Markdown, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Option configures formatting and logging calls.
type Option func(*config)

type config struct {
	spacing int
	styler  Styler
	width   WidthFunc
	sink    Sink
}

func newConfig(opts []Option) *config {
	c := &config{spacing: DefaultColumnSpacing}
	for _, opt := range opts {
		opt(c)
	}
	if c.spacing <= 0 {
		c.spacing = DefaultColumnSpacing
	}
	if c.styler == nil {
		c.styler = DefaultTheme()
	}
	if c.width == nil {
		c.width = VisualWidth
	}
	if c.sink == nil {
		c.sink = NewConsoleSink(nil, c.styler)
	}
	return c
}

// WithColumnSpacing sets the gap between columns. Values below 1 select
// [DefaultColumnSpacing].
func WithColumnSpacing(n int) Option {
	return func(c *config) { c.spacing = n }
}

// WithStyler sets the registry that resolves header style names.
// Default: [DefaultTheme].
func WithStyler(s Styler) Option {
	return func(c *config) { c.styler = s }
}

// WithWidthFunc replaces the width measurement used for layout.
// Default: [VisualWidth].
func WithWidthFunc(fn WidthFunc) Option {
	return func(c *config) { c.width = fn }
}

// WithSink sets where [LogRows] and [LogRecords] send lines.
// Default: a [ConsoleSink] on stdout.
func WithSink(s Sink) Option {
	return func(c *config) { c.sink = s }
}

// Write renders rows in format f and writes them to w. A non-nil styles
// slice marks rows[0] as the header; only the columns format applies the
// styles themselves.
func Write(w io.Writer, f Format, rows [][]any, styles []string, opts ...Option) error {
	c := newConfig(opts)
	switch f {
	case Columns:
		return writeColumns(w, c, rows, styles)
	case CSV:
		return writeCSV(w, rows)
	case TSV:
		return writeTSV(w, rows)
	case Markdown:
		return writeMarkdown(w, c, rows, styles != nil)
	case JSON:
		return writeJSON(w, rows, styles != nil)
	case YAML:
		return writeYAML(w, rows, styles != nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders rows in format f and returns the bytes.
func Marshal(f Format, rows [][]any, styles []string, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, rows, styles, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
