// Package diagram exports decision trees for humans: a renderer-neutral
// model built by walking the tree, rendered as a Mermaid flowchart or as
// indented JSON. Export is illustrative surface for demos and debugging,
// not part of the evaluation core.
package diagram

import "github.com/capybara-brain346/decision-tree-engine/pkg/schema"

// Model is the intermediate representation used by all renderers.
type Model struct {
	Title string
	Nodes []*Node
	Edges []Edge
}

// Node represents a single tree node in the diagram.
type Node struct {
	ID      string
	Label   string
	Kind    schema.NodeKind
	Outcome any // terminal value, outcome nodes only
}

// Edge represents a parent-to-child branch.
type Edge struct {
	From  string
	To    string
	Label string // "true", "false", "branch[i]", "default"
}
