package cliff

import (
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/muesli/termenv"
)

// Styler resolves a style name and applies it to text. It reports false
// when the name is unknown.
type Styler interface {
	Style(name, text string) (string, bool)
}

// ColorMode determines when a [Theme] emits escape sequences.
type ColorMode int

const (
	// ColorAuto enables color when the environment supports it.
	ColorAuto ColorMode = iota
	// ColorAlways emits color regardless of the environment.
	ColorAlways
	// ColorNever resolves styles but never emits color.
	ColorNever
)

func (m ColorMode) enabled() bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !termenv.EnvNoColor() && termenv.EnvColorProfile() != termenv.Ascii
	}
}

var attributes = map[string]color.Attribute{
	"bold":          color.Bold,
	"dim":           color.Faint,
	"italic":        color.Italic,
	"underline":     color.Underline,
	"blink":         color.BlinkSlow,
	"inverse":       color.ReverseVideo,
	"hidden":        color.Concealed,
	"strikethrough": color.CrossedOut,

	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"grey":    color.FgHiBlack,
	"gray":    color.FgHiBlack,

	"brightRed":     color.FgHiRed,
	"brightGreen":   color.FgHiGreen,
	"brightYellow":  color.FgHiYellow,
	"brightBlue":    color.FgHiBlue,
	"brightMagenta": color.FgHiMagenta,
	"brightCyan":    color.FgHiCyan,
	"brightWhite":   color.FgHiWhite,

	"bgBlack":   color.BgBlack,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
	"bgYellow":  color.BgYellow,
	"bgBlue":    color.BgBlue,
	"bgMagenta": color.BgMagenta,
	"bgCyan":    color.BgCyan,
	"bgWhite":   color.BgWhite,
}

var rainbowCycle = []color.Attribute{color.FgRed, color.FgYellow, color.FgGreen, color.FgBlue, color.FgMagenta}

// Theme is a [Styler] backed by terminal SGR attributes. Style names are
// color and modifier names ("red", "bold", "bgBlue"), "rainbow", or
// aliases. Names may be chained with '.', as in "bold.red".
//
// Every attribute is emitted as its own ESC [ n m sequence so that
// [VisualWidth] measures styled and plain text alike.
//
// A Theme is configured once with [Theme.Alias] and is safe for concurrent
// use afterwards.
type Theme struct {
	enabled bool
	aliases map[string]string
}

// NewTheme returns a theme with the standard log-level aliases:
// silly, input, verbose, prompt, info, data, help, warn, debug and error.
func NewTheme(mode ColorMode) *Theme {
	return &Theme{
		enabled: mode.enabled(),
		aliases: map[string]string{
			"silly":   "rainbow",
			"input":   "grey",
			"verbose": "cyan",
			"prompt":  "grey",
			"info":    "green",
			"data":    "grey",
			"help":    "cyan",
			"warn":    "yellow",
			"debug":   "blue",
			"error":   "red",
		},
	}
}

var defaultTheme = sync.OnceValue(func() *Theme { return NewTheme(ColorAuto) })

// DefaultTheme returns the process-wide theme, created on first use in
// [ColorAuto] mode.
func DefaultTheme() *Theme { return defaultTheme() }

// Alias makes name resolve to target, which may itself be an alias or a
// '.'-separated chain.
func (t *Theme) Alias(name, target string) *Theme {
	t.aliases[name] = target
	return t
}

// Enabled reports whether the theme emits escape sequences.
func (t *Theme) Enabled() bool { return t.enabled }

// Style applies the named style to text.
func (t *Theme) Style(name, text string) (string, bool) {
	parts, ok := t.resolve(name, 0)
	if !ok {
		return text, false
	}
	if !t.enabled {
		return text, true
	}
	// Innermost first, so "bold.red" yields bold(red(text)).
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "rainbow" {
			text = rainbow(text)
			continue
		}
		text = sgr(attributes[parts[i]], text)
	}
	return text, true
}

const maxAliasDepth = 8

func (t *Theme) resolve(name string, depth int) ([]string, bool) {
	if name == "" || depth > maxAliasDepth {
		return nil, false
	}
	var out []string
	for _, part := range strings.Split(name, ".") {
		if target, ok := t.aliases[part]; ok {
			sub, ok := t.resolve(target, depth+1)
			if !ok {
				return nil, false
			}
			out = append(out, sub...)
			continue
		}
		if _, ok := attributes[part]; !ok && part != "rainbow" {
			return nil, false
		}
		out = append(out, part)
	}
	return out, true
}

func sgr(attr color.Attribute, text string) string {
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}

func rainbow(text string) string {
	var sb strings.Builder
	i := 0
	for _, r := range text {
		if r == ' ' {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(sgr(rainbowCycle[i%len(rainbowCycle)], string(r)))
		i++
	}
	return sb.String()
}
