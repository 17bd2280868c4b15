// Package interact derives what the rendering surface should draw from user
// interaction. State changes only through Reduce, and emphasis is computed as
// an overlay on top of the immutable diagram store.
package interact

import (
	"maps"

	"github.com/msalah0e/archmap/internal/diagram"
)

// State is the per-session interaction state. The zero value is the state of
// a freshly loaded diagram: nothing highlighted, every node collapsed, every
// node at its authored position.
type State struct {
	Highlighted string                      `json:"highlighted,omitempty"`
	Expanded    map[string]bool             `json:"expanded,omitempty"`
	Positions   map[string]diagram.Position `json:"positions,omitempty"`
}

// IsExpanded reports whether a node's detail panel is open.
func (s State) IsExpanded(id string) bool {
	return s.Expanded[id]
}

// ExpandedIDs returns the ids of expanded nodes in store order.
func (s State) ExpandedIDs(store *diagram.Store) []string {
	var ids []string
	for _, n := range store.Nodes() {
		if s.Expanded[n.ID] {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// PositionOf returns a node's dragged position, falling back to the authored one.
func (s State) PositionOf(n diagram.Node) diagram.Position {
	if p, ok := s.Positions[n.ID]; ok {
		return p
	}
	return n.Position
}

func (s State) withExpandedToggled(id string) State {
	next := make(map[string]bool, len(s.Expanded)+1)
	maps.Copy(next, s.Expanded)
	if next[id] {
		delete(next, id)
	} else {
		next[id] = true
	}
	if len(next) == 0 {
		next = nil
	}
	s.Expanded = next
	return s
}

func (s State) withPosition(id string, p diagram.Position) State {
	next := make(map[string]diagram.Position, len(s.Positions)+1)
	maps.Copy(next, s.Positions)
	next[id] = p
	s.Positions = next
	return s
}
