package prettylog

// Colorizer wraps rendered text for terminal styling. The layout engine uses
// only Dim, applied to the collapsed JSON line in single-line mode. The
// terminal escape codes themselves are the caller's concern. Implementations
// must be pure: the same input always yields the same output.
type Colorizer interface {
	Dim(s string) string
}

// ColorizerFunc adapts a plain function to the [Colorizer] interface.
type ColorizerFunc func(string) string

// Dim calls f(s).
func (f ColorizerFunc) Dim(s string) string { return f(s) }

// NopColorizer passes text through unchanged. It is the default when
// [Config.Colorizer] is nil.
var NopColorizer Colorizer = ColorizerFunc(func(s string) string { return s })
