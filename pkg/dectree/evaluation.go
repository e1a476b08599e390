package dectree

import "github.com/capybara-brain346/decision-tree-engine/pkg/schema"

// DefaultMaxDepth bounds recursion for trees evaluated without an
// explicit limit. Well-formed trees are orders of magnitude shallower;
// hitting the limit almost always means a cycle was built into the tree.
const DefaultMaxDepth = 1000

// Evaluation carries the per-call state threaded through one traversal:
// the caller's fact context, the optional trace recorder, and the depth
// counter backing the recursion guard. Nodes never retain it past the
// call. One Evaluation serves exactly one Evaluate call.
type Evaluation struct {
	// Data is the fact context predicates read and actions may mutate.
	Data schema.Context

	trace    []schema.TraceEntry
	tracing  bool
	depth    int
	maxDepth int
}

// NewEvaluation creates an Evaluation for direct node evaluation without
// an Engine, with tracing disabled and the default depth limit. The
// Engine builds its own.
func NewEvaluation(data schema.Context) *Evaluation {
	return &Evaluation{Data: data, maxDepth: DefaultMaxDepth}
}

// enter counts one level of descent and fails fast when the depth limit
// is exceeded, converting unbounded recursion on a malformed (cyclic)
// tree into a structured error instead of stack exhaustion.
func (ev *Evaluation) enter(node string) error {
	ev.depth++
	if ev.depth > ev.maxDepth {
		return schema.NewErrorf(schema.ErrCodeCycleDetected,
			"evaluation exceeded max depth %d; tree likely contains a cycle", ev.maxDepth).
			WithNode(node)
	}
	return nil
}

func (ev *Evaluation) leave() {
	ev.depth--
}

func (ev *Evaluation) record(entry schema.TraceEntry) {
	if ev.tracing {
		ev.trace = append(ev.trace, entry)
	}
}
