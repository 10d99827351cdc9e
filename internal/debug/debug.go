// Package debug provides context-based debug mode with structured logging.
package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const debugKey contextKey = "debug_enabled"

// Log formats accepted by SetupLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WithDebug returns a context with debug mode enabled/disabled.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugKey, enabled)
}

// IsEnabled returns true if debug mode is enabled in the context.
func IsEnabled(ctx context.Context) bool {
	if v, ok := ctx.Value(debugKey).(bool); ok {
		return v
	}
	return false
}

// NewLogger builds a logger writing to w. Debug mode lowers the level from
// Warn to Debug. format is "text" (the default when empty) or "json".
func NewLogger(w io.Writer, debugEnabled bool, format string) (*slog.Logger, error) {
	level := slog.LevelWarn
	if debugEnabled {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}
}

// SetupLogger configures the default slog logger on w (stderr when nil).
func SetupLogger(w io.Writer, debugEnabled bool, format string) error {
	if w == nil {
		w = os.Stderr
	}
	logger, err := NewLogger(w, debugEnabled, format)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}
