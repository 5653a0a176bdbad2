package prettylog

// Field is one classified record field. When IsRendered is set, Rendered
// holds the custom renderer's output and is used verbatim by the layout
// engine; otherwise Value is carried untouched and serialized during layout.
// Omit marks a field whose renderer opted it out of output entirely.
type Field struct {
	Key        string
	Value      any
	Rendered   string
	IsRendered bool
	Omit       bool
}

// Classification partitions a record's fields into plain fields and
// error-like fields. Both slices preserve the record's insertion order.
type Classification struct {
	Plain  []Field
	Errors []Field
}

// Classify partitions rec's fields in input order. Fields named in the
// effective exclusion set (SkipKeys plus the reserved keys when
// ExcludeReservedKeys is set) are dropped; every other field lands in
// exactly one bucket. Custom renderers are applied here, so Classification
// carries final text for rendered fields. Classify never serializes and
// never fails on cyclic values; serialization safety is the layout engine's
// concern.
func Classify(rec *Record, cfg Config) Classification {
	var c Classification
	if rec == nil {
		return c
	}
	cfg = cfg.normalize()

	skip := make(map[string]struct{}, len(cfg.SkipKeys))
	for _, k := range cfg.SkipKeys {
		skip[k] = struct{}{}
	}
	if cfg.ExcludeReservedKeys {
		for _, k := range reservedKeys {
			skip[k] = struct{}{}
		}
	}
	errorKey := make(map[string]struct{}, len(cfg.ErrorKeys))
	for _, k := range cfg.ErrorKeys {
		errorKey[k] = struct{}{}
	}

	for _, key := range rec.keys {
		if _, ok := skip[key]; ok {
			continue
		}
		f := Field{Key: key, Value: rec.values[key]}
		if render, ok := cfg.Renderers[key]; ok && render != nil {
			text, ok := render(f.Value, key, rec)
			f.Rendered = text
			f.IsRendered = true
			f.Omit = !ok
		}
		if _, ok := errorKey[key]; ok {
			c.Errors = append(c.Errors, f)
		} else {
			c.Plain = append(c.Plain, f)
		}
	}
	return c
}
