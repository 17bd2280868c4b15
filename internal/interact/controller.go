package interact

import "github.com/msalah0e/archmap/internal/diagram"

// Controller owns one session's interaction state. It is not safe for
// concurrent use; callers that share one across goroutines must serialize
// access.
type Controller struct {
	store *diagram.Store
	opts  Options
	state State
}

// NewController returns a controller over store in the fresh-load state.
func NewController(store *diagram.Store, opts Options) *Controller {
	return &Controller{store: store, opts: opts.normalized()}
}

// Store returns the diagram the controller renders.
func (c *Controller) Store() *diagram.Store { return c.store }

// Options returns the emphasis options in effect.
func (c *Controller) Options() Options { return c.opts }

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Apply reduces e into the controller's state.
func (c *Controller) Apply(e Event) {
	c.state = Reduce(c.store, c.state, e)
}

// OnNodeClick highlights a node and its one-hop neighbourhood.
func (c *Controller) OnNodeClick(id string) { c.Apply(NodeClicked{ID: id}) }

// OnBackgroundClick clears any highlight.
func (c *Controller) OnBackgroundClick() { c.Apply(BackgroundClicked{}) }

// ToggleExpand flips a node's detail panel.
func (c *Controller) ToggleExpand(id string) { c.Apply(ExpandToggled{ID: id}) }

// ResetLayout discards all interaction state.
func (c *Controller) ResetLayout() { c.Apply(LayoutReset{}) }

// OnNodeDrag moves a node for display.
func (c *Controller) OnNodeDrag(id string, to diagram.Position) {
	c.Apply(NodeDragged{ID: id, To: to})
}

// HighlightedNodeID returns the last clicked node, if any.
func (c *Controller) HighlightedNodeID() (string, bool) {
	return c.state.Highlighted, c.state.Highlighted != ""
}

// Expanded reports whether a node's detail panel is open.
func (c *Controller) Expanded(id string) bool { return c.state.IsExpanded(id) }

// ConnectedSet returns the highlighted node's connected set, empty when
// nothing is highlighted.
func (c *Controller) ConnectedSet() map[string]bool {
	return ConnectedSet(c.store, c.state.Highlighted)
}

// Presentation derives the render state for the current interaction state.
func (c *Controller) Presentation() Presentation {
	return Present(c.store, c.state, c.opts)
}
