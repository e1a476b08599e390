package diagram

import (
	"fmt"
	"strings"

	"github.com/capybara-brain346/decision-tree-engine/pkg/schema"
)

// RenderMermaid renders a Model as a Mermaid flowchart string. Decision
// and multi-branch nodes render as diamonds, outcomes as rounded leaves.
func RenderMermaid(model *Model) string {
	var b strings.Builder

	b.WriteString("graph TD\n")

	// Title as comment.
	if model.Title != "" {
		b.WriteString(fmt.Sprintf("    %%%% %s\n", model.Title))
	}

	for _, node := range model.Nodes {
		b.WriteString(fmt.Sprintf("    %s\n", mermaidNodeDef(node)))
	}

	for _, edge := range model.Edges {
		label := ""
		if edge.Label != "" {
			label = fmt.Sprintf("|%s|", edge.Label)
		}
		b.WriteString(fmt.Sprintf("    %s -->%s %s\n",
			mermaidSafeID(edge.From), label, mermaidSafeID(edge.To)))
	}

	b.WriteString("\n")
	b.WriteString("    classDef decision fill:#1a5276,stroke:#0e3a52,color:#fff\n")
	b.WriteString("    classDef outcome fill:#2d6a2d,stroke:#1a4a1a,color:#fff\n")

	for _, node := range model.Nodes {
		switch node.Kind {
		case schema.KindDecision, schema.KindMultiBranch:
			b.WriteString(fmt.Sprintf("    class %s decision\n", mermaidSafeID(node.ID)))
		case schema.KindOutcome:
			b.WriteString(fmt.Sprintf("    class %s outcome\n", mermaidSafeID(node.ID)))
		}
	}

	return b.String()
}

// mermaidNodeDef renders a node definition with a shape matching its kind.
func mermaidNodeDef(node *Node) string {
	id := mermaidSafeID(node.ID)
	label := mermaidEscape(node.Label)

	switch node.Kind {
	case schema.KindDecision, schema.KindMultiBranch:
		return fmt.Sprintf("%s{\"%s\"}", id, label)
	case schema.KindOutcome:
		return fmt.Sprintf("%s([\"%s\"])", id, label)
	default:
		return fmt.Sprintf("%s[\"%s\"]", id, label)
	}
}

// mermaidSafeID strips characters Mermaid cannot digest in node IDs.
func mermaidSafeID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// mermaidEscape neutralizes quotes in labels.
func mermaidEscape(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
