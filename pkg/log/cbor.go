package log

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// TraceVersion is the trace file format written by FileLogger.
const TraceVersion = 1

const traceMagic = "MNLOG"

// ErrNotTrace is returned when a file does not start with a trace header.
var ErrNotTrace = errors.New("not a meshnode trace file")

// traceHeader is the first CBOR item of every trace file.
type traceHeader struct {
	Magic   string `cbor:"1,keyasint"`
	Version uint8  `cbor:"2,keyasint"`
}

func (h traceHeader) check() error {
	if h.Magic != traceMagic {
		return ErrNotTrace
	}
	if h.Version == 0 || h.Version > TraceVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrNotTrace, h.Version)
	}
	return nil
}

// codec holds the CBOR modes for trace items: canonical map order, no
// indefinite lengths and RFC 3339 timestamps with nanoseconds.
type codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var trace = mustCodec()

func mustCodec() codec {
	enc, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("trace encoder mode: %v", err))
	}

	dec, err := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("trace decoder mode: %v", err))
	}

	return codec{enc: enc, dec: dec}
}

// EncodeEvent encodes a single event.
func EncodeEvent(event Event) ([]byte, error) {
	return trace.enc.Marshal(event)
}

// DecodeEvent decodes a single event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	err := trace.dec.Unmarshal(data, &event)
	return event, err
}
