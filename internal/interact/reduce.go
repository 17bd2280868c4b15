package interact

import "github.com/msalah0e/archmap/internal/diagram"

// Reduce returns the state that results from applying e to s. It never
// mutates s. Events naming nodes that are not in store leave the state
// unchanged.
func Reduce(store *diagram.Store, s State, e Event) State {
	switch ev := e.(type) {
	case NodeClicked:
		if !store.HasNode(ev.ID) {
			return s
		}
		s.Highlighted = ev.ID
		return s
	case BackgroundClicked:
		s.Highlighted = ""
		return s
	case ExpandToggled:
		if !store.HasNode(ev.ID) {
			return s
		}
		return s.withExpandedToggled(ev.ID)
	case LayoutReset:
		return State{}
	case NodeDragged:
		if !store.HasNode(ev.ID) {
			return s
		}
		return s.withPosition(ev.ID, ev.To)
	default:
		return s
	}
}

// ReduceAll folds events over s in order.
func ReduceAll(store *diagram.Store, s State, events ...Event) State {
	for _, e := range events {
		s = Reduce(store, s, e)
	}
	return s
}
