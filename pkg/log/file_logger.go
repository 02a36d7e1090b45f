package log

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileExtension is the conventional extension for trace files.
const FileExtension = ".mnlog"

// FileLogger appends events to a trace file. A new file starts with a
// trace header; an existing trace is continued. Safe for concurrent use.
//
// Log cannot fail, so the first write error is kept and returned by Close.
type FileLogger struct {
	mu  sync.Mutex
	f   *os.File
	enc *cbor.Encoder
	err error
}

// NewFileLogger opens or creates the trace file at path.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	enc := trace.enc.NewEncoder(f)
	if info.Size() == 0 {
		if err := enc.Encode(traceHeader{Magic: traceMagic, Version: TraceVersion}); err != nil {
			f.Close()
			return nil, fmt.Errorf("write trace header: %w", err)
		}
	}
	return &FileLogger{f: f, enc: enc}, nil
}

// Log appends event. It does nothing after Close or after a failed write.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil || l.err != nil {
		return
	}
	l.err = l.enc.Encode(event)
}

// Close closes the file and reports the first write error, if any.
// Further calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.f == nil {
		return nil
	}
	err := errors.Join(l.err, l.f.Close())
	l.f = nil
	return err
}

var _ Logger = (*FileLogger)(nil)
