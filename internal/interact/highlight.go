package interact

import "github.com/msalah0e/archmap/internal/diagram"

// Options tunes how strongly non-highlighted elements recede.
type Options struct {
	NodeDimOpacity float64 `json:"nodeDimOpacity"`
	EdgeDimOpacity float64 `json:"edgeDimOpacity"`
	ElevatedZ      int     `json:"elevatedZ"`
}

// DefaultOptions returns the standard dimming factors.
func DefaultOptions() Options {
	return Options{
		NodeDimOpacity: 0.4,
		EdgeDimOpacity: 0.3,
		ElevatedZ:      1000,
	}
}

// normalized fills zero or out-of-range fields from DefaultOptions.
func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.NodeDimOpacity <= 0 || o.NodeDimOpacity > 1 {
		o.NodeDimOpacity = d.NodeDimOpacity
	}
	if o.EdgeDimOpacity <= 0 || o.EdgeDimOpacity > 1 {
		o.EdgeDimOpacity = d.EdgeDimOpacity
	}
	if o.ElevatedZ <= 0 {
		o.ElevatedZ = d.ElevatedZ
	}
	return o
}

// Emphasis is how prominently one element is drawn.
type Emphasis struct {
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"zIndex"`
}

// Normal is full opacity at the default stacking order.
var Normal = Emphasis{Opacity: 1, ZIndex: 0}

// Dimmed reports whether the element is drawn at reduced opacity.
func (e Emphasis) Dimmed() bool {
	return e.Opacity < 1
}

// Overlay maps element ids to emphasis. It is computed independently of the
// store and merged with it only at render time.
type Overlay struct {
	Nodes map[string]Emphasis
	Edges map[string]Emphasis
}

// Node returns the emphasis for a node id, Normal if unset.
func (o Overlay) Node(id string) Emphasis {
	if e, ok := o.Nodes[id]; ok {
		return e
	}
	return Normal
}

// Edge returns the emphasis for an edge id, Normal if unset.
func (o Overlay) Edge(id string) Emphasis {
	if e, ok := o.Edges[id]; ok {
		return e
	}
	return Normal
}

// ConnectedSet returns id plus every node one edge away from it in either
// direction. It is empty for an id the store does not have.
func ConnectedSet(store *diagram.Store, id string) map[string]bool {
	if !store.HasNode(id) {
		return map[string]bool{}
	}
	set := map[string]bool{id: true}
	out, in := store.EdgesOf(id)
	for _, e := range out {
		set[e.Target] = true
	}
	for _, e := range in {
		set[e.Source] = true
	}
	return set
}

// Highlight computes the overlay for a click on node id. Nodes in the
// connected set and edges touching id are drawn at full opacity above
// everything else; the rest recede. An empty or unknown id yields a uniform
// overlay, the same as a background click.
func Highlight(store *diagram.Store, id string, opts Options) Overlay {
	opts = opts.normalized()
	nodes := store.Nodes()
	edges := store.Edges()
	o := Overlay{
		Nodes: make(map[string]Emphasis, len(nodes)),
		Edges: make(map[string]Emphasis, len(edges)),
	}

	if id == "" || !store.HasNode(id) {
		for _, n := range nodes {
			o.Nodes[n.ID] = Normal
		}
		for _, e := range edges {
			o.Edges[e.ID] = Normal
		}
		return o
	}

	connected := ConnectedSet(store, id)
	elevated := Emphasis{Opacity: 1, ZIndex: opts.ElevatedZ}
	for _, n := range nodes {
		if connected[n.ID] {
			o.Nodes[n.ID] = elevated
		} else {
			o.Nodes[n.ID] = Emphasis{Opacity: opts.NodeDimOpacity}
		}
	}
	for _, e := range edges {
		if e.Touches(id) {
			o.Edges[e.ID] = elevated
		} else {
			o.Edges[e.ID] = Emphasis{Opacity: opts.EdgeDimOpacity}
		}
	}
	return o
}
