package dectree

import (
	"context"

	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// OutcomeNode is a terminal leaf: it returns a fixed value, running an
// optional side-effecting action against the context first. The value is
// opaque to the engine.
type OutcomeNode struct {
	name   string
	value  any
	action Action
}

// NewOutcome creates an OutcomeNode. Pass nil for no action.
func NewOutcome(value any, action Action) *OutcomeNode {
	return &OutcomeNode{value: value, action: action}
}

// NewNamedOutcome creates an OutcomeNode with a diagnostic name for
// traces, logs, and exports. Unnamed outcomes are identified by their
// value instead.
func NewNamedOutcome(name string, value any, action Action) *OutcomeNode {
	return &OutcomeNode{name: name, value: value, action: action}
}

// Name returns the diagnostic name, or "" for an unnamed outcome.
func (n *OutcomeNode) Name() string { return n.name }

// Value returns the terminal value.
func (n *OutcomeNode) Value() any { return n.value }

// HasAction reports whether an action is attached.
func (n *OutcomeNode) HasAction() bool { return n.action != nil }

// Evaluate runs the action (exactly once per reach of this node, before
// the value is produced) and returns the terminal value. An action error
// aborts the evaluation: the value is not returned, no trace entry
// claims it was, and the error propagates unmodified.
func (n *OutcomeNode) Evaluate(ctx context.Context, ev *Evaluation) (schema.Result, error) {
	if n.name != "" {
		ctx = logging.WithNodeName(ctx, n.name)
	}

	if n.action != nil {
		if err := n.action(ctx, ev.Data); err != nil {
			return schema.NoResult(), err
		}
	}

	ev.record(schema.TraceEntry{
		Node:    n.name,
		Kind:    schema.KindOutcome,
		Outcome: n.value,
	})
	return schema.Outcome(n.value), nil
}

var _ Node = (*OutcomeNode)(nil)
