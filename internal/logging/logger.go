// Package logging defines the structured logger used across the API and a
// log/slog backed implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key-value
// pairs, e.g. log.Info(ctx, "user created", "user_id", id).
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

type ctxKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or the process default.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(ctxKey{}).(Logger); ok && l != nil {
		return l
	}
	return Default()
}
