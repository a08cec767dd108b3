package fsm

import (
	"context"
	"log/slog"
)

// Logger is the default logger used by LogTransitions when none is provided.
var Logger = slog.Default()

// LogTransitions returns a hook that writes a debug record for every transition.
// Manual jumps made with ChangeState are logged without an event attribute.
func LogTransitions(logger *slog.Logger) TransitionHook {
	if logger == nil {
		logger = Logger
	}

	return func(from, to State, event Event) error {
		attrs := []slog.Attr{
			slog.String("from", string(from)),
			slog.String("to", string(to)),
		}

		if event != "" {
			attrs = append(attrs, slog.String("event", string(event)))
		}

		logger.LogAttrs(context.Background(), slog.LevelDebug, "fsm transition", attrs...)

		return nil
	}
}
