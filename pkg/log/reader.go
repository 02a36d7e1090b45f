package log

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// Reader streams events from a trace file written by FileLogger.
type Reader struct {
	f      *os.File
	dec    *cbor.Decoder
	filter Filter
	empty  bool
}

// NewReader opens the trace at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens the trace at path and yields only events that
// match filter. It fails with ErrNotTrace if the file has no valid header.
// A zero-length file reads as an empty trace.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := &Reader{f: f, dec: trace.dec.NewDecoder(f), filter: filter}

	var h traceHeader
	switch err := r.dec.Decode(&h); {
	case errors.Is(err, io.EOF):
		r.empty = true
	case err != nil:
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotTrace, path)
	default:
		if err := h.check(); err != nil {
			f.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return r, nil
}

// Next returns the next matching event, or io.EOF at the end of the trace.
func (r *Reader) Next() (Event, error) {
	if r.empty {
		return Event{}, io.EOF
	}
	for {
		var event Event
		if err := r.dec.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Match(event) {
			return event, nil
		}
	}
}

// All iterates the remaining matching events. Iteration stops after the
// first read error, which is yielded with a zero Event.
func (r *Reader) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			event, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(event, err) || err != nil {
				return
			}
		}
	}
}

// Close closes the trace file.
func (r *Reader) Close() error {
	return r.f.Close()
}
