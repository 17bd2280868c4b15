package render

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
)

// Diagram renders every node, grouped by category, followed by the edges.
// Dimmed elements are drawn with the subtle style.
func Diagram(p interact.Presentation, st Styles) string {
	var b strings.Builder

	groups := make(map[diagram.Category][]interact.NodeView)
	var order []diagram.Category
	for _, n := range p.Nodes {
		if _, seen := groups[n.Category]; !seen {
			order = append(order, n.Category)
		}
		groups[n.Category] = append(groups[n.Category], n)
	}

	for i, cat := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		heading := st.icon(cat) + " " + cat.Label()
		b.WriteString("  " + st.title(cat, heading) + "\n")
		b.WriteString("  " + st.subtle(strings.Repeat("─", len([]rune(heading))+2)) + "\n")
		for _, n := range groups[cat] {
			writeNode(&b, n, p.Highlighted, st)
		}
	}

	if len(p.Edges) > 0 {
		b.WriteString("\n  " + st.brand("Connections") + "\n")
		b.WriteString("  " + st.subtle(strings.Repeat("─", 13)) + "\n")
		for _, e := range p.Edges {
			writeEdge(&b, e, st)
		}
	}
	return b.String()
}

func writeNode(b *strings.Builder, n interact.NodeView, highlighted string, st Styles) {
	marker := "●"
	switch {
	case n.ID == highlighted:
		marker = "◉"
	case n.Dimmed():
		marker = "○"
	}

	title := st.title(n.Category, n.Title)
	if n.Dimmed() {
		title = st.subtle(n.Title)
	}
	fmt.Fprintf(b, "  %s %s %s\n", marker, title, st.subtle("["+n.ID+"]"))

	if n.Description != "" {
		desc := n.Description
		if n.Dimmed() {
			desc = st.subtle(desc)
		}
		fmt.Fprintf(b, "    %s\n", desc)
	}

	arrow := "▸"
	if n.Expanded {
		arrow = "▾"
	}
	fmt.Fprintf(b, "    %s\n", st.subtle(arrow+" "+n.ToggleLabel))

	if n.Expanded && n.Details != "" {
		for _, line := range strings.Split(wordwrap.WrapString(n.Details, st.width()), "\n") {
			fmt.Fprintf(b, "      %s\n", st.info(line))
		}
	}
}

func writeEdge(b *strings.Builder, e interact.EdgeView, st Styles) {
	arrow := "──▶"
	switch {
	case e.Active:
		arrow = "━━▶"
	case e.Dimmed():
		arrow = "┈┈▶"
	}

	line := fmt.Sprintf("%s %s %s", e.Source, arrow, e.Target)
	if e.Label != "" {
		line += " " + e.Label
	}
	if e.Style != diagram.RouteDefault {
		line += " (" + string(e.Style) + ")"
	}

	switch {
	case e.Active:
		line = st.brand(line)
	case e.Dimmed():
		line = st.subtle(line)
	}
	fmt.Fprintf(b, "  %s\n", line)
}

// Inspect renders one node as a tree: incoming edges above it, outgoing
// edges below.
func Inspect(store *diagram.Store, id string, st Styles) (string, error) {
	n, ok := store.Node(id)
	if !ok {
		return "", fmt.Errorf("node not found: %s", id)
	}
	out, in := store.EdgesOf(id)

	var b strings.Builder
	for i, e := range in {
		prefix := "  ├── "
		if i == len(in)-1 && len(out) == 0 {
			prefix = "  └── "
		}
		src, _ := store.Node(e.Source)
		fmt.Fprintf(&b, "%s%s %s %s\n", prefix, st.subtle(edgeName(e)), st.subtle("◀─"), st.title(src.Category, src.Title))
		fmt.Fprintf(&b, "  │           %s\n", st.subtle(src.ID))
		b.WriteString("  │\n")
	}

	fmt.Fprintf(&b, "  %s %s %s\n", st.icon(n.Category), st.title(n.Category, n.Title), st.subtle("["+n.ID+"]"))
	fmt.Fprintf(&b, "  │  %s\n", st.subtle(n.Category.Label()))
	if n.Description != "" {
		fmt.Fprintf(&b, "  │  %s\n", n.Description)
	}
	if n.Details != "" {
		for _, line := range strings.Split(wordwrap.WrapString(n.Details, st.width()), "\n") {
			fmt.Fprintf(&b, "  │  %s\n", st.info(line))
		}
	}

	if len(out) > 0 {
		b.WriteString("  │\n")
	}
	for i, e := range out {
		prefix := "  ├── "
		if i == len(out)-1 {
			prefix = "  └── "
		}
		dst, _ := store.Node(e.Target)
		fmt.Fprintf(&b, "%s%s %s %s\n", prefix, st.subtle(edgeName(e)), st.subtle("─▶"), st.title(dst.Category, dst.Title))
		fmt.Fprintf(&b, "              %s\n", st.subtle(dst.ID))
	}

	return b.String(), nil
}

func edgeName(e diagram.Edge) string {
	if e.Label != "" {
		return e.Label
	}
	return e.ID
}
