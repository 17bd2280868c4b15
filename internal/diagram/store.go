package diagram

import "errors"

// Store holds the diagram's nodes and edges. It is never mutated after New
// returns, so it can be shared freely between sessions.
type Store struct {
	nodes  []Node
	edges  []Edge
	byNode map[string]int
	byEdge map[string]int
	out    map[string][]int
	in     map[string][]int
}

// document is an unvalidated collection plus the file each element came from.
type document struct {
	nodes     []Node
	edges     []Edge
	nodeFiles []string
	edgeFiles []string
}

func (d *document) addNode(n Node, file string) {
	d.nodes = append(d.nodes, n)
	d.nodeFiles = append(d.nodeFiles, file)
}

func (d *document) addEdge(e Edge, file string) {
	d.edges = append(d.edges, e)
	d.edgeFiles = append(d.edgeFiles, file)
}

func (d *document) nodeFile(i int) string {
	if i < len(d.nodeFiles) {
		return d.nodeFiles[i]
	}
	return ""
}

func (d *document) edgeFile(i int) string {
	if i < len(d.edgeFiles) {
		return d.edgeFiles[i]
	}
	return ""
}

// duplicates reports every id that repeats within d. Empty ids are left to
// build.
func (d *document) duplicates() []error {
	var errs []error
	nodes := make(map[string]bool, len(d.nodes))
	for i, n := range d.nodes {
		if n.ID == "" {
			continue
		}
		if nodes[n.ID] {
			errs = append(errs, &ConfigError{Kind: KindDuplicateNode, NodeID: n.ID, File: d.nodeFile(i)})
			continue
		}
		nodes[n.ID] = true
	}

	edges := make(map[string]bool, len(d.edges))
	for i, e := range d.edges {
		if e.ID == "" {
			continue
		}
		if edges[e.ID] {
			errs = append(errs, &ConfigError{Kind: KindDuplicateEdge, EdgeID: e.ID, File: d.edgeFile(i)})
			continue
		}
		edges[e.ID] = true
	}
	return errs
}

// overlay replaces elements of d whose id appears in o and appends the rest.
// Ids in o must be unique; see duplicates.
func (d *document) overlay(o *document) {
	nodeIdx := make(map[string]int, len(d.nodes))
	for i, n := range d.nodes {
		nodeIdx[n.ID] = i
	}
	for i, n := range o.nodes {
		if j, ok := nodeIdx[n.ID]; ok {
			d.nodes[j] = n
			d.nodeFiles[j] = o.nodeFile(i)
			continue
		}
		nodeIdx[n.ID] = len(d.nodes)
		d.addNode(n, o.nodeFile(i))
	}

	edgeIdx := make(map[string]int, len(d.edges))
	for i, e := range d.edges {
		edgeIdx[e.ID] = i
	}
	for i, e := range o.edges {
		if j, ok := edgeIdx[e.ID]; ok {
			d.edges[j] = e
			d.edgeFiles[j] = o.edgeFile(i)
			continue
		}
		edgeIdx[e.ID] = len(d.edges)
		d.addEdge(e, o.edgeFile(i))
	}
}

// New validates nodes and edges and returns a store over copies of them.
// Every violation is reported; the returned error joins one *ConfigError per
// problem.
func New(nodes []Node, edges []Edge) (*Store, error) {
	return build(&document{nodes: nodes, edges: edges})
}

func build(d *document) (*Store, error) {
	s := &Store{
		nodes:  append([]Node(nil), d.nodes...),
		edges:  append([]Edge(nil), d.edges...),
		byNode: make(map[string]int, len(d.nodes)),
		byEdge: make(map[string]int, len(d.edges)),
		out:    make(map[string][]int),
		in:     make(map[string][]int),
	}

	var errs []error
	for i, n := range s.nodes {
		file := d.nodeFile(i)
		if n.ID == "" {
			errs = append(errs, &ConfigError{Kind: KindEmptyID, Value: "node", File: file})
			continue
		}
		if _, dup := s.byNode[n.ID]; dup {
			errs = append(errs, &ConfigError{Kind: KindDuplicateNode, NodeID: n.ID, File: file})
			continue
		}
		if !n.Category.Valid() {
			errs = append(errs, &ConfigError{Kind: KindUnknownCategory, NodeID: n.ID, Value: string(n.Category), File: file})
		}
		s.byNode[n.ID] = i
	}

	for i, e := range s.edges {
		file := d.edgeFile(i)
		if e.ID == "" {
			errs = append(errs, &ConfigError{Kind: KindEmptyID, Value: "edge", File: file})
			continue
		}
		if _, dup := s.byEdge[e.ID]; dup {
			errs = append(errs, &ConfigError{Kind: KindDuplicateEdge, EdgeID: e.ID, File: file})
			continue
		}
		s.byEdge[e.ID] = i
		if !e.Style.Valid() {
			errs = append(errs, &ConfigError{Kind: KindUnknownStyle, EdgeID: e.ID, Value: string(e.Style), File: file})
		}
		if _, ok := s.byNode[e.Source]; !ok {
			errs = append(errs, &ConfigError{Kind: KindMissingNode, EdgeID: e.ID, NodeID: e.Source, File: file})
		}
		if _, ok := s.byNode[e.Target]; !ok {
			errs = append(errs, &ConfigError{Kind: KindMissingNode, EdgeID: e.ID, NodeID: e.Target, File: file})
		}
		s.out[e.Source] = append(s.out[e.Source], i)
		s.in[e.Target] = append(s.in[e.Target], i)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

// Nodes returns every node in load order.
func (s *Store) Nodes() []Node {
	return append([]Node(nil), s.nodes...)
}

// Edges returns every edge in load order.
func (s *Store) Edges() []Edge {
	return append([]Edge(nil), s.edges...)
}

// Len returns the node and edge counts.
func (s *Store) Len() (nodes, edges int) {
	return len(s.nodes), len(s.edges)
}

// Node returns the node with the given id.
func (s *Store) Node(id string) (Node, bool) {
	i, ok := s.byNode[id]
	if !ok {
		return Node{}, false
	}
	return s.nodes[i], true
}

// HasNode reports whether id names a node in the store.
func (s *Store) HasNode(id string) bool {
	_, ok := s.byNode[id]
	return ok
}

// Edge returns the edge with the given id.
func (s *Store) Edge(id string) (Edge, bool) {
	i, ok := s.byEdge[id]
	if !ok {
		return Edge{}, false
	}
	return s.edges[i], true
}

// EdgesOf returns the edges leaving and entering a node, in load order.
func (s *Store) EdgesOf(id string) (outgoing, incoming []Edge) {
	for _, i := range s.out[id] {
		outgoing = append(outgoing, s.edges[i])
	}
	for _, i := range s.in[id] {
		incoming = append(incoming, s.edges[i])
	}
	return outgoing, incoming
}

// Categories returns the categories that have at least one node, in
// presentation order.
func (s *Store) Categories() []Category {
	seen := make(map[Category]bool)
	for _, n := range s.nodes {
		seen[n.Category] = true
	}
	var cats []Category
	for _, c := range categories {
		if seen[c] {
			cats = append(cats, c)
		}
	}
	return cats
}

// ByCategory returns the nodes of one category in load order.
func (s *Store) ByCategory(c Category) []Node {
	var result []Node
	for _, n := range s.nodes {
		if n.Category == c {
			result = append(result, n)
		}
	}
	return result
}
