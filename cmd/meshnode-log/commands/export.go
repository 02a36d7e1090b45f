package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/meshnode/meshnode-go/pkg/log"
)

type exporter interface {
	write(log.Event) error
	flush() error
}

var exportFormats = map[string]func(io.Writer) (exporter, error){
	"jsonl": newJSONLExporter,
	"csv":   newCSVExporter,
}

// RunExport converts the trace at path to format, writing to output or to
// stdout when output is empty.
func RunExport(path, format, output string) (err error) {
	newExporter, ok := exportFormats[format]
	if !ok {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	exp, err := newExporter(w)
	if err != nil {
		return err
	}
	for event, err := range reader.All() {
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := exp.write(event); err != nil {
			return err
		}
	}
	return exp.flush()
}

type jsonlExporter struct{ enc *json.Encoder }

func newJSONLExporter(w io.Writer) (exporter, error) {
	return jsonlExporter{enc: json.NewEncoder(w)}, nil
}

func (e jsonlExporter) write(event log.Event) error {
	if err := e.enc.Encode(event); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return nil
}

func (jsonlExporter) flush() error { return nil }

var csvHeader = []string{"timestamp", "instance_id", "layer", "category", "type", "detail"}

type csvExporter struct{ w *csv.Writer }

func newCSVExporter(w io.Writer) (exporter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	return csvExporter{w: cw}, nil
}

func (e csvExporter) write(event log.Event) error {
	kind, detail := eventRow(event)
	row := []string{
		event.Timestamp.UTC().Format(time.RFC3339Nano),
		event.InstanceID,
		event.Layer.String(),
		event.Category.String(),
		kind,
		detail,
	}
	if err := e.w.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

func (e csvExporter) flush() error {
	e.w.Flush()
	return e.w.Error()
}

// eventRow summarizes the payload of event as a kind and a short detail.
func eventRow(event log.Event) (kind, detail string) {
	switch {
	case event.StateChange != nil:
		return event.StateChange.Entity.String(), event.StateChange.NewState
	case event.Callback != nil:
		return event.Callback.Action.String(), fmt.Sprint(event.Callback.Slot)
	case event.Scan != nil:
		if event.Scan.Done {
			return event.Scan.Kind.String(), "done"
		}
		return event.Scan.Kind.String(), fmt.Sprintf("ch=%d rssi=%d", event.Scan.Channel, event.Scan.RSSI)
	case event.Error != nil:
		return "ERROR", event.Error.Message
	}
	return "unknown", ""
}
