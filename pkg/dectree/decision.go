package dectree

import (
	"context"

	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// DecisionNode is a binary branch: a predicate over the context selects
// the true or false child. Either child may be absent (nil), in which
// case evaluation of the missing side yields "no result" rather than an
// error. Structure is fixed after construction apart from the child
// setters, which must not race with evaluation.
type DecisionNode struct {
	name      string
	predicate Predicate
	trueNode  Node
	falseNode Node
}

// NewDecision creates a DecisionNode. The name is diagnostic only: it
// appears in traces, errors, and exports, never in evaluation logic.
// Pass nil for an absent branch.
func NewDecision(name string, predicate Predicate, trueNode, falseNode Node) *DecisionNode {
	return &DecisionNode{
		name:      name,
		predicate: predicate,
		trueNode:  trueNode,
		falseNode: falseNode,
	}
}

// Name returns the diagnostic name.
func (n *DecisionNode) Name() string { return n.name }

// TrueNode returns the child taken when the predicate holds, or nil.
func (n *DecisionNode) TrueNode() Node { return n.trueNode }

// FalseNode returns the child taken when the predicate fails, or nil.
func (n *DecisionNode) FalseNode() Node { return n.falseNode }

// SetTrueNode replaces the true branch. Builder-phase only.
func (n *DecisionNode) SetTrueNode(node Node) *DecisionNode {
	n.trueNode = node
	return n
}

// SetFalseNode replaces the false branch. Builder-phase only.
func (n *DecisionNode) SetFalseNode(node Node) *DecisionNode {
	n.falseNode = node
	return n
}

// Evaluate applies the predicate and descends into the matching child.
// A missing matching child yields NoResult. Predicate errors propagate
// unmodified.
func (n *DecisionNode) Evaluate(ctx context.Context, ev *Evaluation) (schema.Result, error) {
	if err := ev.enter(n.name); err != nil {
		return schema.NoResult(), err
	}
	defer ev.leave()

	// Correlate predicate calls and descendant logging with this node;
	// children overwrite with their own name.
	ctx = logging.WithNodeName(ctx, n.name)

	result, err := n.predicate(ctx, ev.Data)
	if err != nil {
		return schema.NoResult(), err
	}

	branch := schema.BranchNone
	var next Node
	switch {
	case result && n.trueNode != nil:
		branch, next = schema.BranchTrue, n.trueNode
	case !result && n.falseNode != nil:
		branch, next = schema.BranchFalse, n.falseNode
	}

	ev.record(schema.TraceEntry{
		Node:      n.name,
		Kind:      schema.KindDecision,
		Predicate: &result,
		Branch:    branch,
	})

	if next == nil {
		return schema.NoResult(), nil
	}
	return next.Evaluate(ctx, ev)
}

var _ Node = (*DecisionNode)(nil)
