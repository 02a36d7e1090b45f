package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("instance_id", event.InstanceID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Callback != nil:
		attrs = append(attrs,
			slog.String("action", event.Callback.Action.String()),
			slog.Int("slot", event.Callback.Slot),
		)
		if event.Callback.Flags != 0 {
			attrs = append(attrs, slog.Uint64("flags", uint64(event.Callback.Flags)))
		}
	case event.Scan != nil:
		attrs = append(attrs,
			slog.String("scan", event.Scan.Kind.String()),
			slog.Bool("done", event.Scan.Done),
			slog.Bool("delivered", event.Scan.Delivered),
		)
		if !event.Scan.Done {
			attrs = append(attrs,
				slog.Int("channel", int(event.Scan.Channel)),
				slog.Int("rssi", int(event.Scan.RSSI)),
			)
		}
		if event.Scan.NetworkName != "" {
			attrs = append(attrs, slog.String("network_name", event.Scan.NetworkName))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
