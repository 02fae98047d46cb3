// Package logging defines the structured-logging interface used across
// authshell and its log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "accounts collection is malformed", "key", key, "error", err)
type Logger interface {
	// Debug logs diagnostic detail that is off by default.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but recoverable conditions, such as
	// persisted data that had to be discarded.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure that was swallowed or downgraded.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
