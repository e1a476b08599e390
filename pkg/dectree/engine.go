package dectree

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Engine holds the root of a decision tree and exposes the single
// evaluation entry point. It is constructed once and reused across many
// Evaluate calls. The trace buffer makes a single Engine unsafe for
// concurrent Evaluate calls; the node tree itself is safely shared
// read-only across engines once building is done.
type Engine struct {
	root     Node
	logger   *slog.Logger
	maxDepth int
	tracing  bool
	trace    []schema.TraceEntry
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-evaluation debug logging.
// Without it the engine is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMaxDepth overrides the recursion guard limit.
func WithMaxDepth(n int) Option {
	return func(e *Engine) { e.maxDepth = n }
}

// WithTracing enables or disables trace recording. Tracing is on by
// default; disable it for hot paths that never read the trace.
func WithTracing(enabled bool) Option {
	return func(e *Engine) { e.tracing = enabled }
}

// NewEngine creates an Engine rooted at the given node.
func NewEngine(root Node, opts ...Option) *Engine {
	e := &Engine{
		root:     root,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
		tracing:  true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate walks the tree against the given context and returns the
// root's result verbatim. When resetTrace is true the trace buffer is
// cleared first; otherwise entries accumulate across calls. Each call is
// tagged with a fresh evaluation ID for log correlation. Errors from
// predicates and actions propagate unmodified; trace entries recorded
// before a failure are kept (best-effort log).
func (e *Engine) Evaluate(ctx context.Context, data schema.Context, resetTrace bool) (schema.Result, error) {
	if resetTrace {
		e.trace = e.trace[:0]
	}

	ctx = logging.WithEvaluationID(ctx, uuid.NewString())
	log := logging.LogWith(ctx, e.logger)
	log.DebugContext(ctx, "evaluation started", slog.Int("facts", len(data)))

	ev := &Evaluation{
		Data:     data,
		tracing:  e.tracing,
		maxDepth: e.maxDepth,
	}

	result, err := e.root.Evaluate(ctx, ev)
	e.trace = append(e.trace, ev.trace...)
	if err != nil {
		log.DebugContext(ctx, "evaluation failed", slog.String("error", err.Error()))
		return schema.NoResult(), err
	}

	log.DebugContext(ctx, "evaluation finished",
		slog.Bool("present", result.Present()),
		slog.String("result", result.String()))
	return result, nil
}

// Trace returns a copy of the current trace buffer, so callers observe a
// stable snapshot even if further Evaluate calls append or reset.
func (e *Engine) Trace() []schema.TraceEntry {
	out := make([]schema.TraceEntry, len(e.trace))
	copy(out, e.trace)
	return out
}
