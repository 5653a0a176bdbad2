package prettylog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapLines wraps every line of text wider than width display columns.
// Wrapped pieces are rejoined with "\n" so the layout engine re-indents them
// like any other continuation line.
func wrapLines(text string, width int) string {
	var out []string
	for _, line := range splitLines(text) {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

// wrapLine breaks one line at display-width boundaries. Wide characters
// never straddle a boundary.
func wrapLine(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if runewidth.StringWidth(line) == 0 && len(s) > 0 {
			// Safety: advance at least one rune to avoid an infinite loop.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}
