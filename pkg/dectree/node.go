// Package dectree evaluates hierarchical decision logic: a tree of
// conditional nodes is walked depth-first against a caller-supplied
// context of named facts until a terminal outcome is reached.
//
// Three node kinds compose the tree: DecisionNode (binary branch),
// MultiBranchNode (ordered first-match-wins branch list with a default),
// and OutcomeNode (terminal value with an optional side-effecting action).
// Trees are built by composition and handed to an Engine, which exposes
// the single evaluation entry point and records a best-effort trace of
// the path taken.
package dectree

import (
	"context"

	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Node is the capability contract every node variant implements.
type Node interface {
	Evaluate(ctx context.Context, ev *Evaluation) (schema.Result, error)
}

// Predicate is a boolean function of the context used to choose a branch.
// Predicates must be total over any context they receive: a missing key is
// the predicate's own defaulting responsibility, not an error. They should
// not mutate the context (contract, not enforced). A returned error aborts
// the evaluation and propagates to the caller unmodified.
type Predicate func(ctx context.Context, c schema.Context) (bool, error)

// Action is a side-effecting function of the context invoked when a
// terminal outcome is reached. Actions may mutate the context or perform
// external effects; the engine does not sequence or retry them. A returned
// error aborts the evaluation before the outcome value is produced.
type Action func(ctx context.Context, c schema.Context) error
