package notifier

import (
	"context"
	"log/slog"
)

// Slog surfaces user-visible notices through the structured log. It never
// blocks the caller.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a new slog-backed notifier
func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

// Notify emits one transient user-visible message
func (n *Slog) Notify(_ context.Context, message string) {
	n.logger.Warn("notice", "message", message)
}
