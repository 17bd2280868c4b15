package interact

import "github.com/msalah0e/archmap/internal/diagram"

// Toggle button captions for collapsed and expanded nodes.
const (
	ShowDetailsLabel = "Show Details"
	HideDetailsLabel = "Hide Details"
)

// NodeView is a node as the rendering surface should draw it.
type NodeView struct {
	diagram.Node
	Emphasis
	Expanded    bool   `json:"expanded"`
	Connected   bool   `json:"connected"`
	ToggleLabel string `json:"toggleLabel"`
}

// EdgeView is an edge as the rendering surface should draw it.
type EdgeView struct {
	diagram.Edge
	Emphasis
	Active bool `json:"active"`
}

// Presentation is the complete render state derived from a store and a State.
type Presentation struct {
	Highlighted string     `json:"highlighted,omitempty"`
	Nodes       []NodeView `json:"nodes"`
	Edges       []EdgeView `json:"edges"`
}

// Present merges store, state and the highlight overlay into render state.
// Nodes and edges keep store order.
func Present(store *diagram.Store, s State, opts Options) Presentation {
	overlay := Highlight(store, s.Highlighted, opts)
	highlighted := s.Highlighted
	if !store.HasNode(highlighted) {
		highlighted = ""
	}

	nodes := store.Nodes()
	edges := store.Edges()
	p := Presentation{
		Highlighted: highlighted,
		Nodes:       make([]NodeView, 0, len(nodes)),
		Edges:       make([]EdgeView, 0, len(edges)),
	}

	for _, n := range nodes {
		n.Position = s.PositionOf(n)
		expanded := s.IsExpanded(n.ID)
		label := ShowDetailsLabel
		if expanded {
			label = HideDetailsLabel
		}
		emph := overlay.Node(n.ID)
		p.Nodes = append(p.Nodes, NodeView{
			Node:        n,
			Emphasis:    emph,
			Expanded:    expanded,
			Connected:   highlighted != "" && !emph.Dimmed(),
			ToggleLabel: label,
		})
	}
	for _, e := range edges {
		emph := overlay.Edge(e.ID)
		p.Edges = append(p.Edges, EdgeView{
			Edge:     e,
			Emphasis: emph,
			Active:   highlighted != "" && !emph.Dimmed(),
		})
	}
	return p
}

// Node returns the view for a node id.
func (p Presentation) Node(id string) (NodeView, bool) {
	for _, n := range p.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}

// Edge returns the view for an edge id.
func (p Presentation) Edge(id string) (EdgeView, bool) {
	for _, e := range p.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return EdgeView{}, false
}
