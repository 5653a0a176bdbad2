package prettylog

import "strings"

// Layout renders a classification as final text. In single-line mode the
// plain bucket collapses onto one colorized JSON line; otherwise each plain
// field becomes one indented block with multi-line values re-indented under
// the field's own indentation. Error fields always render as multi-line
// blocks after all plain output, in both modes.
func Layout(c Classification, cfg Config) string {
	cfg = cfg.normalize()
	var b strings.Builder

	if cfg.SingleLine {
		var line string
		if len(c.Plain) > 0 {
			if text, ok := stringify(singleLineObject(c.Plain), 0); ok {
				line = cfg.Colorizer.Dim(text)
			}
		}
		b.WriteString(collapseEscapes(line + cfg.LineBreak))
	} else {
		for _, f := range c.Plain {
			text, ok := fieldText(f)
			if !ok {
				continue
			}
			text = collapseEscapes(text)
			if cfg.MaxWidth > 0 {
				text = wrapLines(text, cfg.MaxWidth)
			}
			joined := joinLinesWithIndentation(text, cfg.Indent, cfg.LineBreak)
			b.WriteString(cfg.Indent)
			b.WriteString(f.Key)
			b.WriteString(":")
			// No space after the colon when the value starts with a line
			// break, so the break is not preceded by a dangling space.
			if !strings.HasPrefix(joined, cfg.LineBreak) {
				b.WriteString(" ")
			}
			b.WriteString(joined)
			b.WriteString(cfg.LineBreak)
		}
	}

	for _, f := range c.Errors {
		text, ok := fieldText(f)
		if !ok {
			continue
		}
		b.WriteString(formatErrorBlock(f.Key, text, cfg.LineBreak, cfg.Indent))
	}
	return b.String()
}

// fieldText resolves the text for one field: custom renderer output
// verbatim, otherwise safe serialization with two-space pretty printing.
// ok is false when the field contributes nothing.
func fieldText(f Field) (string, bool) {
	if f.IsRendered {
		if f.Omit {
			return "", false
		}
		return f.Rendered, true
	}
	return stringify(f.Value, 2)
}

// singleLineObject rebuilds the plain bucket as one ordered object for
// compact serialization. Rendered text replaces the original value; omitted
// fields are dropped.
func singleLineObject(plain []Field) *Record {
	obj := NewRecord()
	for _, f := range plain {
		if f.IsRendered {
			if f.Omit {
				continue
			}
			obj.Set(f.Key, f.Rendered)
			continue
		}
		obj.Set(f.Key, f.Value)
	}
	return obj
}

// collapseEscapes removes the doubled backslashes that safe serialization
// produces for literal backslashes. Cosmetic only: the value itself is not
// re-interpreted.
func collapseEscapes(s string) string {
	return strings.ReplaceAll(s, `\\`, `\`)
}

// joinLinesWithIndentation rejoins the lines of text so every continuation
// line sits under the field's own indentation.
func joinLinesWithIndentation(text, indent, lineBreak string) string {
	return strings.Join(splitLines(text), lineBreak+indent)
}

// splitLines splits on "\n", tolerating "\r\n".
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
