package diagram

import (
	"encoding/json"
	"fmt"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// RenderJSON renders a tree as indented JSON mirroring its nesting:
// decision nodes carry "true"/"false" children, multi-branch nodes a
// "branches" array plus "default", outcomes their terminal value and
// whether an action is attached. Predicates are opaque functions and are
// represented only by their owning node's name.
func RenderJSON(root dectree.Node) (string, error) {
	doc := toJSONNode(root)
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("diagram: render JSON: %w", err)
	}
	return string(b), nil
}

func toJSONNode(node dectree.Node) map[string]any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *dectree.DecisionNode:
		doc := map[string]any{
			"type": schema.KindDecision,
			"name": n.Name(),
		}
		if child := toJSONNode(n.TrueNode()); child != nil {
			doc["true"] = child
		}
		if child := toJSONNode(n.FalseNode()); child != nil {
			doc["false"] = child
		}
		return doc

	case *dectree.MultiBranchNode:
		branches := n.Branches()
		docs := make([]map[string]any, 0, len(branches))
		for _, branch := range branches {
			docs = append(docs, toJSONNode(branch.Node))
		}
		doc := map[string]any{
			"type":     schema.KindMultiBranch,
			"name":     n.Name(),
			"branches": docs,
		}
		if child := toJSONNode(n.DefaultNode()); child != nil {
			doc["default"] = child
		}
		return doc

	case *dectree.OutcomeNode:
		doc := map[string]any{
			"type":   schema.KindOutcome,
			"value":  n.Value(),
			"action": n.HasAction(),
		}
		if n.Name() != "" {
			doc["name"] = n.Name()
		}
		return doc

	default:
		return map[string]any{"type": fmt.Sprintf("%T", node)}
	}
}
