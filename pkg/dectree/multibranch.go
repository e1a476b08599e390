package dectree

import (
	"context"
	"fmt"

	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Branch pairs a predicate with the node evaluated when it matches.
type Branch struct {
	Predicate Predicate
	Node      Node
}

// MultiBranchNode holds an ordered list of (predicate, node) branches and
// an optional default. Evaluation scans the branches in insertion order
// and dispatches to the first whose predicate holds; later predicates are
// not evaluated. The builder methods mutate the node and must complete
// before any concurrent evaluation begins.
type MultiBranchNode struct {
	name        string
	branches    []Branch
	defaultNode Node
}

// NewMultiBranch creates an empty MultiBranchNode. The name is diagnostic
// only. An empty branch list with no default always yields "no result".
func NewMultiBranch(name string) *MultiBranchNode {
	return &MultiBranchNode{name: name}
}

// Name returns the diagnostic name.
func (n *MultiBranchNode) Name() string { return n.name }

// AddBranch appends a branch; order is significant and preserved exactly
// as added. Returns the receiver for fluent chaining.
func (n *MultiBranchNode) AddBranch(predicate Predicate, node Node) *MultiBranchNode {
	n.branches = append(n.branches, Branch{Predicate: predicate, Node: node})
	return n
}

// SetDefault sets or replaces the fallback node taken when no branch
// predicate matches. Returns the receiver for fluent chaining.
func (n *MultiBranchNode) SetDefault(node Node) *MultiBranchNode {
	n.defaultNode = node
	return n
}

// Branches returns a copy of the branch list, in insertion order.
func (n *MultiBranchNode) Branches() []Branch {
	out := make([]Branch, len(n.branches))
	copy(out, n.branches)
	return out
}

// DefaultNode returns the fallback node, or nil.
func (n *MultiBranchNode) DefaultNode() Node { return n.defaultNode }

// Evaluate dispatches to the first branch whose predicate holds
// (first-match-wins, short-circuit), falling back to the default node.
// With no match and no default it yields NoResult. Predicate errors
// propagate unmodified.
func (n *MultiBranchNode) Evaluate(ctx context.Context, ev *Evaluation) (schema.Result, error) {
	if err := ev.enter(n.name); err != nil {
		return schema.NoResult(), err
	}
	defer ev.leave()

	// Correlate predicate calls and descendant logging with this node;
	// children overwrite with their own name.
	ctx = logging.WithNodeName(ctx, n.name)

	for i, b := range n.branches {
		matched, err := b.Predicate(ctx, ev.Data)
		if err != nil {
			return schema.NoResult(), err
		}
		if !matched {
			continue
		}

		ev.record(schema.TraceEntry{
			Node:   n.name,
			Kind:   schema.KindMultiBranch,
			Branch: fmt.Sprintf("branch[%d]", i),
		})
		return b.Node.Evaluate(ctx, ev)
	}

	if n.defaultNode != nil {
		ev.record(schema.TraceEntry{
			Node:   n.name,
			Kind:   schema.KindMultiBranch,
			Branch: schema.BranchDefault,
		})
		return n.defaultNode.Evaluate(ctx, ev)
	}

	ev.record(schema.TraceEntry{
		Node:   n.name,
		Kind:   schema.KindMultiBranch,
		Branch: schema.BranchNone,
	})
	return schema.NoResult(), nil
}

var _ Node = (*MultiBranchNode)(nil)
