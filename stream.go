package prettylog

import (
	"io"
	"iter"
)

// WriteAll formats records from an iterator and writes each to w as it
// arrives. The first write error stops iteration and is returned.
func WriteAll(w io.Writer, cfg Config, seq iter.Seq[*Record]) error {
	var err error
	seq(func(rec *Record) bool {
		err = Write(w, cfg, rec)
		return err == nil
	})
	return err
}

// WriteChan formats records from a channel and writes them to w.
// It is a thin wrapper around [WriteAll].
func WriteChan(w io.Writer, cfg Config, ch <-chan *Record) error {
	return WriteAll(w, cfg, chanToSeq(ch))
}

func chanToSeq(ch <-chan *Record) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for rec := range ch {
			if !yield(rec) {
				return
			}
		}
	}
}
