package cliff

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// WidthFunc measures how many terminal cells a string occupies.
type WidthFunc func(string) int

var sgrPattern = regexp.MustCompile("\x1b\\[\\d+m")

const hexDigits = "0123456789ABCDEF"

// VisualWidth returns the number of columns s occupies once rendered.
//
// Color sequences of the form ESC [ <digits> m are removed first. The rest
// is percent-escaped (characters outside the unreserved set become %XX, or
// %uXXXX past Latin-1) and every escape counts as a single column, so
// accented and non-Latin text measures by character rather than by byte.
func VisualWidth(s string) int {
	encoded := escape(sgrPattern.ReplaceAllString(s, ""))
	n := 0
	for i := 0; i < len(encoded); n++ {
		switch {
		case encoded[i] != '%':
			i++
		case i+1 < len(encoded) && encoded[i+1] == 'u':
			i += 6
		default:
			i += 3
		}
	}
	return n
}

// CellWidth returns the East Asian aware display width of s after removing
// every ANSI escape sequence. Wide characters such as CJK ideographs count
// as two columns. Select it with [WithWidthFunc].
func CellWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// escape percent-encodes s one UTF-16 code unit at a time, leaving
// A-Z a-z 0-9 and @*_+-./ untouched.
func escape(s string) string {
	var sb strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		switch {
		case u < 0x80 && unreserved(byte(u)):
			sb.WriteByte(byte(u))
		case u < 0x100:
			sb.WriteByte('%')
			sb.WriteByte(hexDigits[u>>4])
			sb.WriteByte(hexDigits[u&0xF])
		default:
			sb.WriteString("%u")
			for shift := 12; shift >= 0; shift -= 4 {
				sb.WriteByte(hexDigits[(u>>shift)&0xF])
			}
		}
	}
	return sb.String()
}

func unreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("@*_+-./", c) >= 0
}
