// Package prettylog turns flat structured log records into human-readable
// text. Given an ordered mapping of field names to arbitrary values it
// produces either one indented block per field or a single collapsed JSON
// line, with error-like fields always rendered as dedicated multi-line
// stack-trace blocks.
//
// The central entry points are [Prettify] and [Write], which accept a
// [Record] and a [Config]. The transform is split into two components that
// can also be driven separately: [Classify] partitions fields into plain and
// error-like buckets and applies custom renderers, and [Layout] turns the
// resulting [Classification] into final text.
//
// # Records
//
// [Record] preserves insertion order, which determines output order. Records
// can be built with [Record.Set] or decoded from JSON or YAML with key order
// intact at every depth:
//
//	var rec prettylog.Record
//	_ = json.Unmarshal(line, &rec)
//	fmt.Print(prettylog.Prettify(&rec, prettylog.DefaultConfig()))
//
// # Configuration
//
// [Config] is a plain struct whose zero value is usable. [DefaultConfig]
// reproduces the defaults used under a logging pipeline: reserved logger
// keys ([ReservedKeys]) excluded and err/error classified as error-like
// ([DefaultErrorKeys]).
//
// # Custom renderers
//
// A [Renderer] registered for a field name replaces safe serialization for
// that field; its output is used verbatim. Returning false drops the field
// from output entirely:
//
//	cfg.Renderers = map[string]prettylog.Renderer{
//		"responseTime": func(v any, _ string, _ *prettylog.Record) (string, bool) {
//			return fmt.Sprintf("%vms", v), true
//		},
//	}
//
// # Safety
//
// The transform never fails on malformed values. Cyclic structures render a
// "[Circular]" marker, and values JSON cannot express degrade instead of
// erroring. Only defects in caller-supplied renderers or colorizers surface,
// as panics, to the caller.
//
// # Single-line mode
//
// With [Config.SingleLine] all plain fields collapse onto one compact JSON
// line, wrapped by the [Colorizer]'s dim styling. Error fields still render
// as multi-line blocks after the line. The colorizer is an injected
// capability: [NopColorizer] is the passthrough default, and any ANSI
// implementation can be supplied via [ColorizerFunc].
//
// # Streams
//
// [WriteAll] and [WriteChan] format already-parsed records from an iterator
// or channel, one after another.
package prettylog
