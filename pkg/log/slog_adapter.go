package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level,
// or Warn for error events.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates an adapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
		slog.Int("class", int(event.ClassID)),
		slog.Int("command", int(event.CommandID)),
	}

	if event.Frame != nil {
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.String("frame", hex.EncodeToString(event.Frame.Data)),
		)
		if event.Frame.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	}
	if event.Command != nil {
		attrs = append(attrs, slog.String("name", event.Command.Name))
		if event.Command.Value != nil {
			attrs = append(attrs, slog.Any("value", event.Command.Value))
		}
	}

	level := slog.LevelDebug
	if event.Error != nil {
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("error_kind", event.Error.Kind),
			slog.String("error", event.Error.Message),
		)
		if event.Error.PayloadLen > 0 {
			attrs = append(attrs, slog.Int("payload_len", event.Error.PayloadLen))
		}
	}

	a.logger.LogAttrs(context.Background(), level, "capture", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
