package prettylog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringifyScalars(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name string
		in   any
		want string
	}{
		{"string", "hi", `"hi"`},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
		{"float", 1.5, "1.5"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := stringify(tc.in, 0)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringifySortsMapKeys(t *testing.T) {
	t.Parallel()
	got, ok := stringify(map[string]int{"b": 2, "a": 1}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"a":1,"b":2}`, got)
}

func TestStringifyKeepsRecordOrder(t *testing.T) {
	t.Parallel()
	r := NewRecord()
	r.Set("b", 2)
	r.Set("a", 1)
	got, ok := stringify(r, 0)
	require.True(t, ok)
	assert.Equal(t, `{"b":2,"a":1}`, got)
}

func TestStringifyPretty(t *testing.T) {
	t.Parallel()
	got, ok := stringify(map[string]int{"a": 1}, 2)
	require.True(t, ok)
	assert.Equal(t, "{\n  \"a\": 1\n}", got)
}

func TestStringifyCycleThroughMap(t *testing.T) {
	t.Parallel()
	m := map[string]any{}
	m["self"] = m
	got, ok := stringify(m, 0)
	require.True(t, ok)
	assert.Equal(t, `{"self":"[Circular]"}`, got)
}

func TestStringifyCycleThroughSlice(t *testing.T) {
	t.Parallel()
	s := make([]any, 1)
	s[0] = s
	got, ok := stringify(s, 0)
	require.True(t, ok)
	assert.Equal(t, `["[Circular]"]`, got)
}

func TestStringifyCycleThroughRecord(t *testing.T) {
	t.Parallel()
	r := NewRecord()
	r.Set("self", r)
	got, ok := stringify(r, 0)
	require.True(t, ok)
	assert.Equal(t, `{"self":"[Circular]"}`, got)
}

func TestStringifyRepeatedSiblingIsNotACycle(t *testing.T) {
	t.Parallel()
	shared := map[string]int{"x": 1}
	got, ok := stringify(map[string]any{"a": shared, "b": shared}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"a":{"x":1},"b":{"x":1}}`, got)
}

func TestStringifyUnrepresentable(t *testing.T) {
	t.Parallel()
	_, ok := stringify(func() {}, 0)
	assert.False(t, ok)

	// Dropped from objects, null inside arrays.
	got, ok := stringify(map[string]any{"fn": func() {}, "a": 1}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, got)

	got, ok = stringify([]any{1, make(chan int)}, 0)
	require.True(t, ok)
	assert.Equal(t, `[1,null]`, got)
}

func TestStringifyNonFiniteFloats(t *testing.T) {
	t.Parallel()
	nan := 0.0
	nan = nan / nan
	got, ok := stringify([]any{nan}, 0)
	require.True(t, ok)
	assert.Equal(t, `[null]`, got)
}

func TestStringifyErrorValue(t *testing.T) {
	t.Parallel()
	got, ok := stringify(errors.New("boom"), 0)
	require.True(t, ok)
	assert.Equal(t, `"boom"`, got)
}

type nilReceiverErr struct{ msg string }

func (e *nilReceiverErr) Error() string { return e.msg }

func TestStringifyTypedNilError(t *testing.T) {
	t.Parallel()
	// A typed-nil pointer whose method set satisfies error must render as
	// null, never dispatch Error on the nil receiver.
	var e *nilReceiverErr
	got, ok := stringify(e, 0)
	require.True(t, ok)
	assert.Equal(t, "null", got)

	// Same through an interface value inside a container.
	got, ok = stringify(map[string]any{"cause": e}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"cause":null}`, got)
}

func TestStringifyEmbeddedStructPromoted(t *testing.T) {
	t.Parallel()
	type Base struct{ A int }
	type outer struct {
		Base
		B int
	}
	got, ok := stringify(outer{Base{1}, 2}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"A":1,"B":2}`, got)
}

func TestStringifyStructTags(t *testing.T) {
	t.Parallel()
	type payload struct {
		Named  string `json:"named"`
		Hidden string `json:"-"`
		Bare   int
	}
	got, ok := stringify(payload{Named: "x", Hidden: "y", Bare: 3}, 0)
	require.True(t, ok)
	assert.Equal(t, `{"named":"x","Bare":3}`, got)
}

func TestStringifyIntMapKeys(t *testing.T) {
	t.Parallel()
	got, ok := stringify(map[int]string{10: "a", 2: "b"}, 0)
	require.True(t, ok)
	// Keys render as strings and sort lexically.
	assert.Equal(t, `{"10":"a","2":"b"}`, got)
}

func TestStringifyNoHTMLEscaping(t *testing.T) {
	t.Parallel()
	got, ok := stringify("<a>&</a>", 0)
	require.True(t, ok)
	assert.Equal(t, `"<a>&</a>"`, got)
}

func TestCollapseEscapes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `a\b`, collapseEscapes(`a\\b`))
	// Idempotent on already-collapsed text.
	assert.Equal(t, `a\b`, collapseEscapes(collapseEscapes(`a\\b`)))
	assert.Equal(t, "plain", collapseEscapes("plain"))

	// The collapse targets single-escape serialization artifacts only: a
	// value holding two literal backslashes serializes to four, collapses
	// to two, and a second pass would halve again. Pinned so the scan
	// behavior stays left-to-right and non-overlapping.
	assert.Equal(t, `\\`, collapseEscapes(`\\\\`))
	assert.Equal(t, `\`, collapseEscapes(collapseEscapes(`\\\\`)))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a", "b"}, splitLines("a\r\nb"))
	assert.Equal(t, []string{""}, splitLines(""))
}

func TestJoinLinesWithIndentation(t *testing.T) {
	t.Parallel()
	got := joinLinesWithIndentation("a\nb\nc", "    ", "\n")
	assert.Equal(t, "a\n    b\n    c", got)
}

func TestWrapLineWideCharSafety(t *testing.T) {
	t.Parallel()
	// "你" is a full-width character (2 columns). With width=1, Truncate
	// returns "" because the char doesn't fit. The safety branch advances
	// one rune to avoid an infinite loop.
	assert.Equal(t, []string{"你", "好"}, wrapLine("你好", 1))
}

func TestWrapLineNoWrap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, wrapLine("hi", 0))
	assert.Equal(t, []string{"hi"}, wrapLine("hi", 5))
}

func TestWrapLineBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Hel", "lo"}, wrapLine("Hello", 3))
}

func TestFormatErrorBlockPlainValue(t *testing.T) {
	t.Parallel()
	got := formatErrorBlock("err", `"boom"`, "\n", "    ")
	assert.Equal(t, "    err: \"boom\"\n", got)
}

func TestFormatErrorBlockExpandsStack(t *testing.T) {
	t.Parallel()
	text := "{\n  \"stack\": \"a\\nb\"\n}"
	got := formatErrorBlock("err", text, "\n", "    ")
	want := "    err: {\n" +
		"      \"stack\":\n" +
		"          a\n" +
		"          b\n" +
		"    }\n"
	assert.Equal(t, want, got)
}

func TestFormatErrorBlockNonStringStack(t *testing.T) {
	t.Parallel()
	text := "{\n  \"stack\": 42\n}"
	got := formatErrorBlock("err", text, "\n", "    ")
	// Not a JSON string: the line passes through untouched.
	assert.Equal(t, "    err: {\n      \"stack\": 42\n    }\n", got)
}

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()
	cfg := Config{}.normalize()
	assert.Equal(t, defaultIndent, cfg.Indent)
	assert.Equal(t, defaultLineBreak, cfg.LineBreak)
	assert.Equal(t, defaultErrorKeys, cfg.ErrorKeys)
	assert.NotNil(t, cfg.Colorizer)

	// Explicit values survive normalization.
	cfg = Config{Indent: "\t", ErrorKeys: []string{}}.normalize()
	assert.Equal(t, "\t", cfg.Indent)
	assert.Empty(t, cfg.ErrorKeys)
}
