package prettylog

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidRecord = errors.New("invalid record")
)

const (
	defaultIndent    = "    "
	defaultLineBreak = "\n"
)

var (
	reservedKeys     = []string{"pid", "hostname", "name", "level", "time", "timestamp", "caller"}
	defaultErrorKeys = []string{"err", "error"}
)

// ReservedKeys returns the internal logger field names that are merged into
// SkipKeys when [Config.ExcludeReservedKeys] is set.
func ReservedKeys() []string {
	out := make([]string, len(reservedKeys))
	copy(out, reservedKeys)
	return out
}

// DefaultErrorKeys returns the field names treated as error-like when
// [Config.ErrorKeys] is nil.
func DefaultErrorKeys() []string {
	out := make([]string, len(defaultErrorKeys))
	copy(out, defaultErrorKeys)
	return out
}

// Renderer produces the output text for a single field, bypassing safe
// serialization entirely. It receives the field value, the field name, and
// the whole record. Returning false means the field contributes nothing to
// the output.
type Renderer func(value any, key string, rec *Record) (string, bool)

// Config controls one prettify invocation. The zero value is usable: empty
// Indent and LineBreak mean four spaces and "\n", a nil Colorizer means
// [NopColorizer], and a nil ErrorKeys means [DefaultErrorKeys]. An explicit
// empty ErrorKeys slice disables error classification. Config is read-only
// for the duration of an invocation.
type Config struct {
	// Indent is inserted before each rendered field line and prefixed to
	// continuation lines of multi-line values.
	Indent string

	// LineBreak separates output lines.
	LineBreak string

	// SkipKeys lists field names excluded entirely from output.
	SkipKeys []string

	// Renderers maps field names to custom render hooks. A present hook
	// replaces safe serialization for that field; its output is used
	// verbatim.
	Renderers map[string]Renderer

	// ErrorKeys lists field names whose values render as dedicated
	// multi-line error blocks.
	ErrorKeys []string

	// ExcludeReservedKeys merges [ReservedKeys] into SkipKeys.
	ExcludeReservedKeys bool

	// SingleLine collapses all plain fields onto one JSON line. Error
	// fields still render as multi-line blocks.
	SingleLine bool

	// Colorizer wraps the single-line JSON output for dim/meta styling.
	Colorizer Colorizer

	// MaxWidth wraps value lines wider than this many display columns in
	// multi-line output. Zero disables wrapping.
	MaxWidth int
}

// normalize fills in the zero-value defaults.
func (c Config) normalize() Config {
	if c.Indent == "" {
		c.Indent = defaultIndent
	}
	if c.LineBreak == "" {
		c.LineBreak = defaultLineBreak
	}
	if c.ErrorKeys == nil {
		c.ErrorKeys = defaultErrorKeys
	}
	if c.Colorizer == nil {
		c.Colorizer = NopColorizer
	}
	return c
}

// DefaultConfig returns the configuration used when embedding this package
// under a logging pipeline: reserved logger keys excluded and the default
// error-key set active.
func DefaultConfig() Config {
	return Config{
		Indent:              defaultIndent,
		LineBreak:           defaultLineBreak,
		ErrorKeys:           DefaultErrorKeys(),
		ExcludeReservedKeys: true,
		Colorizer:           NopColorizer,
	}
}

// Prettify classifies rec's fields and lays them out as final text in one
// call. It never fails: cyclic or unrepresentable values degrade to sentinel
// text. Only defects in caller-supplied renderers or colorizers propagate,
// as panics, to the caller.
func Prettify(rec *Record, cfg Config) string {
	return Layout(Classify(rec, cfg), cfg)
}

// Write formats rec and writes the result to w.
func Write(w io.Writer, cfg Config, rec *Record) error {
	_, err := io.WriteString(w, Prettify(rec, cfg))
	return err
}
