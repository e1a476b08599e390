package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	evaluationIDKey ctxKey = iota
	nodeNameKey
)

// WithEvaluationID returns a context with the evaluation ID set.
func WithEvaluationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, evaluationIDKey, id)
}

// WithNodeName returns a context with the current node name set.
func WithNodeName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, nodeNameKey, name)
}

// EvaluationID extracts the evaluation ID from the context, or "" if absent.
func EvaluationID(ctx context.Context) string {
	v, _ := ctx.Value(evaluationIDKey).(string)
	return v
}

// NodeName extracts the current node name from the context, or "" if absent.
func NodeName(ctx context.Context) string {
	v, _ := ctx.Value(nodeNameKey).(string)
	return v
}

// LogWith returns a logger enriched with correlation IDs from the context.
// Only non-empty values are added as attributes.
func LogWith(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := EvaluationID(ctx); id != "" {
		logger = logger.With(slog.String("evaluation_id", id))
	}
	if name := NodeName(ctx); name != "" {
		logger = logger.With(slog.String("node", name))
	}
	return logger
}

// CorrelationHandler wraps an slog.Handler, automatically injecting
// correlation IDs from the context into every log record.
// Use with slog.New(NewCorrelationHandler(inner)) so callers can use
// logger.InfoContext(ctx, ...) and IDs appear automatically.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps the given handler with automatic correlation ID injection.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if v := EvaluationID(ctx); v != "" {
		r.AddAttrs(slog.String("evaluation_id", v))
	}
	if v := NodeName(ctx); v != "" {
		r.AddAttrs(slog.String("node", v))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
