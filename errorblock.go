package prettylog

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	stackProbeRE = regexp.MustCompile(`^\s*"stack"`)
	stackLineRE  = regexp.MustCompile(`^(\s*"stack":)\s*(".*"),?$`)
)

// formatErrorBlock renders one error-like field as a dedicated multi-line
// block: the field line first, then any embedded "stack" string expanded to
// one frame per line, indented four columns past the stack key. Lines whose
// stack value is not a well-formed JSON string pass through untouched.
func formatErrorBlock(key, text, lineBreak, indent string) string {
	joined := joinLinesWithIndentation(text, indent, lineBreak)
	split := strings.Split(indent+key+": "+joined+lineBreak, lineBreak)

	var b strings.Builder
	for i, line := range split {
		if i != 0 {
			b.WriteString(lineBreak)
		}
		if !stackProbeRE.MatchString(line) {
			b.WriteString(line)
			continue
		}
		m := stackLineRE.FindStringSubmatch(line)
		if m == nil {
			b.WriteString(line)
			continue
		}
		var stack string
		if err := json.Unmarshal([]byte(m[2]), &stack); err != nil {
			b.WriteString(line)
			continue
		}
		pad := strings.Repeat(" ", leadingWhitespace(line)+4)
		b.WriteString(m[1])
		b.WriteString(lineBreak)
		b.WriteString(pad)
		b.WriteString(strings.ReplaceAll(stack, "\n", lineBreak+pad))
	}
	return b.String()
}

func leadingWhitespace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
