package cliff

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sink receives finished lines tagged with a log level name.
type Sink interface {
	Log(level, line string)
}

// LogRows formats rows like [FormatRows] and sends each line to the
// configured [Sink] at the given level.
func LogRows(level string, rows [][]any, styles []string, opts ...Option) {
	c := newConfig(opts)
	c.log(level, c.formatRows(rows, styles))
}

// LogRecords formats records like [FormatRecords] and sends each line to
// the configured [Sink] at the given level.
func LogRecords[T any](level string, records []T, properties []string, styles []string, opts ...Option) {
	c := newConfig(opts)
	c.log(level, c.formatRows(recordRows(records, properties), styles))
}

func (c *config) log(level, block string) {
	for line := range strings.SplitSeq(block, "\n") {
		c.sink.Log(level, line)
	}
}

// ConsoleSink writes "<level>: <line>" to a writer, styling the tag with
// the style of the same name.
type ConsoleSink struct {
	w      io.Writer
	styler Styler
}

// NewConsoleSink returns a sink writing to w (stdout when nil). A nil styler
// uses [DefaultTheme].
func NewConsoleSink(w io.Writer, styler Styler) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if styler == nil {
		styler = DefaultTheme()
	}
	return &ConsoleSink{w: w, styler: styler}
}

// Log writes one tagged line.
func (s *ConsoleSink) Log(level, line string) {
	tag := level + ": "
	if styled, ok := s.styler.Style(level, tag); ok {
		tag = styled
	}
	_, _ = fmt.Fprintln(s.w, tag, line)
}

// LogrusSink forwards lines to a logrus logger with the level name in the
// "tag" field.
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink returns a sink for logger, or the standard logger when nil.
func NewLogrusSink(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

// Log emits line at the logrus level matching the tag.
func (s *LogrusSink) Log(level, line string) {
	s.logger.WithField("tag", level).Log(logrusLevel(level), line)
}

func logrusLevel(level string) logrus.Level {
	switch level {
	case "silly":
		return logrus.TraceLevel
	case "verbose":
		return logrus.DebugLevel
	}
	lvl, err := logrus.ParseLevel(level)
	switch {
	case err != nil:
		return logrus.InfoLevel
	case lvl < logrus.ErrorLevel:
		// A table line must never panic or exit the process.
		return logrus.ErrorLevel
	default:
		return lvl
	}
}

// SlogSink forwards lines to a slog logger with the level name in the
// "tag" attribute.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink returns a sink for logger, or slog.Default() when nil.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Log emits line at the slog level matching the tag.
func (s *SlogSink) Log(level, line string) {
	s.logger.Log(context.Background(), slogLevel(level), line, slog.String("tag", level))
}

func slogLevel(level string) slog.Level {
	switch logrusLevel(level) {
	case logrus.TraceLevel, logrus.DebugLevel:
		return slog.LevelDebug
	case logrus.WarnLevel:
		return slog.LevelWarn
	case logrus.ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
