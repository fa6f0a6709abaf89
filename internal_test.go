package cliff

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  string
	}{
		"unreserved": {input: "Az09@*_+-./", want: "Az09@*_+-./"},
		"space":      {input: "a b", want: "a%20b"},
		"percent":    {input: "%", want: "%25"},
		"latin1":     {input: "é", want: "%E9"},
		"bmp":        {input: "日", want: "%u65E5"},
		"surrogates": {input: "😀", want: "%uD83D%uDE00"},
		"escape":     {input: "\x1b", want: "%1B"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escape(tt.input))
		})
	}
}

type stubStyler map[string]string

func (s stubStyler) Style(name, text string) (string, bool) {
	prefix, ok := s[name]
	if !ok {
		return text, false
	}
	return prefix + text, true
}

func TestStyleCell(t *testing.T) {
	t.Parallel()
	c := newConfig([]Option{WithStyler(stubStyler{"a": "A:", "b": "B:"})})
	assert.Equal(t, "A:x", c.styleCell("x", 0, []string{"a", "b"}))
	assert.Equal(t, "B:x", c.styleCell("x", 5, []string{"a", "b"}))
	assert.Equal(t, "B:x", c.styleCell("x", 0, []string{"missing", "b"}))
	assert.Equal(t, "x", c.styleCell("x", 0, []string{"missing"}))
	assert.Equal(t, "x", c.styleCell("x", 0, nil))
}

func TestRenderRowStylerChangesWidth(t *testing.T) {
	t.Parallel()
	c := newConfig([]Option{WithStyler(stubStyler{"tag": "##"})})
	// Styled text wider than the column keeps only the spacing gap.
	assert.Equal(t, "##ab ##c ", c.renderRow([]any{"ab", "c"}, []int{2, 1}, []string{"tag"}))
}

func TestIsLiteral(t *testing.T) {
	t.Parallel()
	for _, k := range []Kind{KindNumber, KindBoolean, KindNull, KindUndefined, KindString} {
		assert.True(t, isLiteral(k), k)
	}
	for _, k := range []Kind{KindArray, KindRegexp, KindDate, KindFunction, KindObject} {
		assert.False(t, isLiteral(k), k)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	c := newConfig([]Option{WithColumnSpacing(-3)})
	assert.Equal(t, DefaultColumnSpacing, c.spacing)
	assert.Same(t, DefaultTheme(), c.styler)
	assert.NotNil(t, c.width)
	assert.NotNil(t, c.sink)
}

type key string

func TestPropertyNamedKeyMap(t *testing.T) {
	t.Parallel()
	m := map[key]int{"a": 1}
	assert.Equal(t, 1, property(m, "a"))
	assert.Equal(t, Undefined, property(m, "b"))
	assert.Equal(t, Undefined, property(map[int]int{1: 1}, "1"))
}

type inner struct{ Deep string }

type outer struct {
	*inner
	Top string
}

func TestPropertyPromotedThroughNilPointer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Undefined, property(outer{Top: "t"}, "Deep"))
	assert.Equal(t, "d", property(outer{inner: &inner{Deep: "d"}}, "Deep"))
}

func TestRecordRowsHeader(t *testing.T) {
	t.Parallel()
	rows := recordRows([]map[string]any{{"a": 1}}, []string{"a", "b"})
	assert.Equal(t, [][]any{{"a", "b"}, {1, Undefined}}, rows)
}

func TestLogLevels(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		logrus logrus.Level
		slog   slog.Level
	}{
		"silly":   {logrus: logrus.TraceLevel, slog: slog.LevelDebug},
		"verbose": {logrus: logrus.DebugLevel, slog: slog.LevelDebug},
		"debug":   {logrus: logrus.DebugLevel, slog: slog.LevelDebug},
		"info":    {logrus: logrus.InfoLevel, slog: slog.LevelInfo},
		"data":    {logrus: logrus.InfoLevel, slog: slog.LevelInfo},
		"warn":    {logrus: logrus.WarnLevel, slog: slog.LevelWarn},
		"error":   {logrus: logrus.ErrorLevel, slog: slog.LevelError},
		"fatal":   {logrus: logrus.ErrorLevel, slog: slog.LevelError},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.logrus, logrusLevel(name))
			assert.Equal(t, tt.slog, slogLevel(name))
		})
	}
}

func TestDataValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, json.Number("3"), dataValue(3))
	assert.Equal(t, "NaN", dataValue(nanValue()))
	assert.Equal(t, true, dataValue(true))
	assert.Nil(t, dataValue(Undefined))
	assert.Equal(t, "x", dataValue("x"))
}

func nanValue() float64 {
	zero := 0.0
	return zero / zero
}

func TestYAMLValue(t *testing.T) {
	t.Parallel()
	in := []any{json.Number("3"), json.Number("2.5"), map[string]any{"n": json.Number("1")}, "s"}
	assert.Equal(t, []any{int64(3), 2.5, map[string]any{"n": int64(1)}, "s"}, yamlValue(in))
}
