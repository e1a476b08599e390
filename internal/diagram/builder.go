package diagram

import (
	"fmt"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// Build constructs a Model by walking the tree from root. Node IDs are
// assigned in visit order (n1, n2, ...), so shared subtrees would be
// duplicated; trees are exclusively owned per the construction contract,
// making that a non-issue in practice.
func Build(title string, root dectree.Node) *Model {
	b := &builder{model: &Model{Title: title}}
	b.walk(root, "", "")
	return b.model
}

type builder struct {
	model *Model
	seq   int
}

func (b *builder) nextID() string {
	b.seq++
	return fmt.Sprintf("n%d", b.seq)
}

// walk adds node and its subtree to the model, wiring an edge from the
// parent when there is one. Nil children are skipped.
func (b *builder) walk(node dectree.Node, parentID, edgeLabel string) {
	if node == nil {
		return
	}

	id := b.nextID()
	if parentID != "" {
		b.model.Edges = append(b.model.Edges, Edge{From: parentID, To: id, Label: edgeLabel})
	}

	switch n := node.(type) {
	case *dectree.DecisionNode:
		b.model.Nodes = append(b.model.Nodes, &Node{
			ID:    id,
			Label: n.Name(),
			Kind:  schema.KindDecision,
		})
		b.walk(n.TrueNode(), id, schema.BranchTrue)
		b.walk(n.FalseNode(), id, schema.BranchFalse)

	case *dectree.MultiBranchNode:
		b.model.Nodes = append(b.model.Nodes, &Node{
			ID:    id,
			Label: n.Name(),
			Kind:  schema.KindMultiBranch,
		})
		for i, branch := range n.Branches() {
			b.walk(branch.Node, id, fmt.Sprintf("branch[%d]", i))
		}
		b.walk(n.DefaultNode(), id, schema.BranchDefault)

	case *dectree.OutcomeNode:
		label := n.Name()
		if label == "" {
			label = fmt.Sprintf("%v", n.Value())
		}
		b.model.Nodes = append(b.model.Nodes, &Node{
			ID:      id,
			Label:   label,
			Kind:    schema.KindOutcome,
			Outcome: n.Value(),
		})

	default:
		// Caller-defined node variants render as opaque boxes.
		b.model.Nodes = append(b.model.Nodes, &Node{
			ID:    id,
			Label: fmt.Sprintf("%T", node),
		})
	}
}
