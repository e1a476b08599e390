// Package predicate provides expression-backed predicates for decision
// trees: the same branch conditions that can be written as Go closures
// can instead be expressed as CEL, Expr, or jq source strings, or as a
// JSON Schema the context must match. Compiled programs are cached, so a
// predicate built once is cheap to evaluate on every call.
package predicate

import (
	"context"

	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Engine compiles and evaluates expressions over a fact context.
// Three implementations: CEL, Expr, and GoJQ.
type Engine interface {
	Name() string
	Evaluate(ctx context.Context, expression string, data schema.Context) (any, error)
}

// toBool coerces an expression result into the predicate's boolean, or
// fails with a structured error naming the engine and expression. A
// predicate expression must produce an actual boolean; truthiness of
// other types is deliberately not inferred.
func toBool(engine, expression string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, schema.NewErrorf(schema.ErrCodeExecution,
			"%s predicate %q produced %T, want bool", engine, expression, v).
			WithDetails(map[string]any{"expression": expression})
	}
	return b, nil
}
