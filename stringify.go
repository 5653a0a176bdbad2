package prettylog

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// circularMarker replaces any value that refers back to one of its
// ancestors.
const circularMarker = "[Circular]"

// stringify renders v as JSON text that cannot fail on malformed input:
// cycles become the circular marker and values JSON cannot express degrade
// instead of erroring. indentSpaces > 0 selects pretty printing. ok is false
// when v has no textual representation at all (a bare func or channel).
func stringify(v any, indentSpaces int) (string, bool) {
	tree, ok := sanitize(reflect.ValueOf(v), map[visit]struct{}{})
	if !ok {
		return "", false
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indentSpaces > 0 {
		enc.SetIndent("", strings.Repeat(" ", indentSpaces))
	}
	if err := enc.Encode(tree); err != nil {
		return "", false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

// visit identifies a container on the current sanitize path.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// sanitize converts rv into a tree encoding/json accepts unconditionally.
// Only ancestors count as cycles: the same container appearing twice as
// siblings renders twice. Unrepresentable values are dropped from objects
// and degrade to null inside arrays.
func sanitize(rv reflect.Value, seen map[visit]struct{}) (any, bool) {
	if !rv.IsValid() {
		return nil, true
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, true
		}
		return sanitize(rv.Elem(), seen)
	}
	// Typed-nil pointers render as null before any method dispatch: calling
	// Error or MarshalJSON on a nil receiver would panic.
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, true
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case json.Number:
			return x, true
		case *Record:
			vis := visit{reflect.ValueOf(x).Pointer(), rv.Type()}
			if _, ok := seen[vis]; ok {
				return circularMarker, true
			}
			seen[vis] = struct{}{}
			defer delete(seen, vis)
			out := NewRecord()
			for _, k := range x.keys {
				v, ok := sanitize(reflect.ValueOf(x.values[k]), seen)
				if !ok {
					continue
				}
				out.Set(k, v)
			}
			return out, true
		case error:
			return x.Error(), true
		case json.Marshaler:
			b, err := x.MarshalJSON()
			if err != nil {
				return nil, false
			}
			return json.RawMessage(b), true
		case encoding.TextMarshaler:
			b, err := x.MarshalText()
			if err != nil {
				return nil, false
			}
			return string(b), true
		}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		vis := visit{rv.Pointer(), rv.Type()}
		if _, ok := seen[vis]; ok {
			return circularMarker, true
		}
		seen[vis] = struct{}{}
		defer delete(seen, vis)
		return sanitize(rv.Elem(), seen)

	case reflect.Map:
		if rv.IsNil() {
			return nil, true
		}
		vis := visit{rv.Pointer(), rv.Type()}
		if _, ok := seen[vis]; ok {
			return circularMarker, true
		}
		seen[vis] = struct{}{}
		defer delete(seen, vis)
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k := keyString(it.Key())
			keys = append(keys, k)
			vals[k] = it.Value()
		}
		sort.Strings(keys)
		out := NewRecord()
		for _, k := range keys {
			v, ok := sanitize(vals[k], seen)
			if !ok {
				continue
			}
			out.Set(k, v)
		}
		return out, true

	case reflect.Slice:
		if rv.IsNil() {
			return nil, true
		}
		vis := visit{rv.Pointer(), rv.Type()}
		if _, ok := seen[vis]; ok {
			return circularMarker, true
		}
		seen[vis] = struct{}{}
		defer delete(seen, vis)
		return sanitizeList(rv, seen)

	case reflect.Array:
		return sanitizeList(rv, seen)

	case reflect.Struct:
		t := rv.Type()
		out := NewRecord()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := sf.Name
			tagged := false
			if tag, ok := sf.Tag.Lookup("json"); ok {
				tagName, _, _ := strings.Cut(tag, ",")
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
					tagged = true
				}
			}
			v, ok := sanitize(rv.Field(i), seen)
			if !ok {
				continue
			}
			// Untagged embedded structs promote their fields into the
			// enclosing object. First declaration wins on name conflicts.
			if sf.Anonymous && !tagged {
				if sub, ok := v.(*Record); ok {
					for _, k := range sub.keys {
						if _, exists := out.Get(k); !exists {
							out.Set(k, sub.values[k])
						}
					}
					continue
				}
			}
			out.Set(name, v)
		}
		return out, true

	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return nil, false

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, true
		}
		return f, true

	default:
		return rv.Interface(), true
	}
}

func sanitizeList(rv reflect.Value, seen map[visit]struct{}) (any, bool) {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, ok := sanitize(rv.Index(i), seen)
		if !ok {
			v = nil
		}
		out[i] = v
	}
	return out, true
}

// keyString renders a map key as a JSON object key.
func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
			if b, err := tm.MarshalText(); err == nil {
				return string(b)
			}
		}
	}
	return fmt.Sprint(k.Interface())
}
