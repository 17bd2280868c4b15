package diagram

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclFile is the block layout of an .hcl diagram file:
//
//	node "rag-4" {
//	  category = "retrieval-component"
//	  x        = 400
//	  y        = 550
//	  title    = "Reranker"
//	}
//
//	edge "e-rag-3-4" {
//	  source = "rag-3"
//	  target = "rag-4"
//	}
type hclFile struct {
	Nodes []hclNode `hcl:"node,block"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID          string  `hcl:"id,label"`
	Category    string  `hcl:"category"`
	X           float64 `hcl:"x"`
	Y           float64 `hcl:"y"`
	Title       string  `hcl:"title"`
	Description string  `hcl:"description,optional"`
	Details     string  `hcl:"details,optional"`
}

type hclEdge struct {
	ID     string `hcl:"id,label"`
	Source string `hcl:"source"`
	Target string `hcl:"target"`
	Label  string `hcl:"label,optional"`
	Style  string `hcl:"style,optional"`
}

func decodeHCL(doc *document, name string, data []byte) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	for _, n := range parsed.Nodes {
		doc.addNode(Node{
			ID:          n.ID,
			Category:    Category(n.Category),
			Position:    Position{X: n.X, Y: n.Y},
			Title:       n.Title,
			Description: n.Description,
			Details:     n.Details,
		}, name)
	}
	for _, e := range parsed.Edges {
		doc.addEdge(Edge{
			ID:     e.ID,
			Source: e.Source,
			Target: e.Target,
			Label:  e.Label,
			Style:  RouteStyle(e.Style),
		}, name)
	}
	return nil
}
