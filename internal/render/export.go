package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/msalah0e/archmap/internal/interact"
)

// JSON returns the presentation as indented JSON.
func JSON(p interact.Presentation) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// DOT returns the presentation in Graphviz DOT format. Positions are pinned
// (render with neato -n or fdp), canvas y is flipped to Graphviz's upward
// axis, and opacity becomes the alpha channel of each color.
func DOT(p interact.Presentation) string {
	var b strings.Builder
	b.WriteString("digraph archmap {\n")
	b.WriteString("  graph [splines=true, outputorder=edgesfirst];\n")
	b.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	for _, n := range p.Nodes {
		stroke, fill := colors(n.Category)
		label := escapeLabel(n.Title) + "\\n" + escapeLabel(n.Description)
		if n.Expanded && n.Details != "" {
			label += "\\n\\n" + strings.ReplaceAll(escapeLabel(wordwrap.WrapString(n.Details, 40)), "\n", "\\l") + "\\l"
		}
		penwidth := "1"
		if n.ZIndex > 0 {
			penwidth = "2"
		}
		fmt.Fprintf(&b, "  %q [label=\"%s\", pos=\"%s,%s!\", color=%q, fillcolor=%q, fontcolor=%q, penwidth=%s];\n",
			n.ID, label,
			formatFloat(n.Position.X), formatFloat(-n.Position.Y),
			withAlpha(stroke, n.Opacity), withAlpha(fill, n.Opacity), withAlpha("#000000", n.Opacity),
			penwidth)
	}

	b.WriteString("\n")
	for _, e := range p.Edges {
		attrs := []string{fmt.Sprintf("color=%q", withAlpha("#555555", e.Opacity))}
		if e.Label != "" {
			attrs = append(attrs, fmt.Sprintf("label=%q", e.Label))
		}
		if e.Active {
			attrs = append(attrs, "penwidth=2")
		}
		switch e.Style {
		case "step":
			attrs = append(attrs, "style=dashed")
		case "straight":
			attrs = append(attrs, "arrowhead=vee")
		}
		fmt.Fprintf(&b, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
	}

	b.WriteString("}\n")
	return b.String()
}

// escapeLabel escapes backslashes and quotes in authored text for a DOT
// label. Line separators are added by the caller afterwards.
func escapeLabel(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// withAlpha appends an alpha byte to a #rrggbb color.
func withAlpha(hex string, opacity float64) string {
	if opacity >= 1 {
		return hex
	}
	if opacity < 0 {
		opacity = 0
	}
	return fmt.Sprintf("%s%02x", hex, int(opacity*255+0.5))
}
