package schema

// NodeKind classifies a node variant in trace entries and tree exports.
type NodeKind string

const (
	KindDecision    NodeKind = "decision"
	KindMultiBranch NodeKind = "multibranch"
	KindOutcome     NodeKind = "outcome"
)

// Branch labels recorded in trace entries.
const (
	BranchTrue    = "true"
	BranchFalse   = "false"
	BranchDefault = "default"
	BranchNone    = "none"
)

// TraceEntry records one node visit during a traversal: which node was
// visited, what its predicate decided, and which branch was taken.
// Outcome entries carry the terminal value instead of a branch.
type TraceEntry struct {
	Node      string   `json:"node,omitempty"`
	Kind      NodeKind `json:"kind"`
	Predicate *bool    `json:"predicate,omitempty"`
	Branch    string   `json:"branch,omitempty"`
	Outcome   any      `json:"outcome,omitempty"`
}
