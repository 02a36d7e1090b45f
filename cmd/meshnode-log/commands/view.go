// Package commands implements the meshnode-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/meshnode/meshnode-go/pkg/log"
	"github.com/meshnode/meshnode-go/pkg/netif"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	InstanceID string
	Layer      *log.Layer
	Category   *log.Category
}

func (f ViewFilter) toLogFilter() log.Filter {
	return log.Filter{InstanceID: f.InstanceID, Layer: f.Layer, Category: f.Category}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	var typeLabel string
	switch {
	case event.StateChange != nil:
		typeLabel = "State"
	case event.Callback != nil:
		typeLabel = "Callback"
	case event.Scan != nil:
		typeLabel = "Scan"
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [inst:%s] %s %s\n", ts, shortenID(event.InstanceID), event.Layer.String(), typeLabel)

	switch {
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Callback != nil:
		formatCallbackDetails(w, event.Callback)
	case event.Scan != nil:
		formatScanDetails(w, event.Scan)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of an instance ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatCallbackDetails(w io.Writer, cb *log.CallbackEvent) {
	fmt.Fprintf(w, "  Action: %s\n", cb.Action.String())
	if cb.Slot >= 0 {
		fmt.Fprintf(w, "  Slot: %d\n", cb.Slot)
	}
	if cb.Flags != 0 {
		fmt.Fprintf(w, "  Flags: %s\n", netif.Flags(cb.Flags).String())
	}
}

func formatScanDetails(w io.Writer, sc *log.ScanEvent) {
	fmt.Fprintf(w, "  Kind: %s\n", sc.Kind.String())
	if sc.Done {
		fmt.Fprintln(w, "  Done")
	} else {
		if sc.NetworkName != "" {
			fmt.Fprintf(w, "  Network: %s\n", sc.NetworkName)
		}
		fmt.Fprintf(w, "  Channel: %d  RSSI: %d dBm\n", sc.Channel, sc.RSSI)
	}
	if !sc.Delivered {
		fmt.Fprintln(w, "  (no subscriber)")
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "instance":
		return log.LayerInstance, nil
	case "settings":
		return log.LayerSettings, nil
	case "netif":
		return log.LayerNetif, nil
	case "scan":
		return log.LayerScan, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be instance, settings, netif, or scan)", s)
	}
}

// ParseCategoryFlag parses a category string (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "state":
		return log.CategoryState, nil
	case "callback":
		return log.CategoryCallback, nil
	case "scan":
		return log.CategoryScan, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be state, callback, scan, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.toLogFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for event, err := range reader.All() {
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
