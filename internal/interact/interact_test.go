package interact

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/msalah0e/archmap/internal/diagram"
)

// abcStore is nodes {A,B,C} with the single edge A->B.
func abcStore(t *testing.T) *diagram.Store {
	t.Helper()
	s, err := diagram.New(
		[]diagram.Node{
			{ID: "A", Category: diagram.CategoryModel, Position: diagram.Position{X: 0, Y: 0}},
			{ID: "B", Category: diagram.CategoryRetrieval, Position: diagram.Position{X: 100, Y: 0}},
			{ID: "C", Category: diagram.CategoryApplication, Position: diagram.Position{X: 200, Y: 0}},
		},
		[]diagram.Edge{{ID: "e-a-b", Source: "A", Target: "B"}},
	)
	if err != nil {
		t.Fatalf("diagram.New failed: %v", err)
	}
	return s
}

func builtin(t *testing.T) *diagram.Store {
	t.Helper()
	s, err := diagram.Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	return s
}

func TestInitialStateCollapsed(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())

	for _, n := range store.Nodes() {
		if c.Expanded(n.ID) {
			t.Errorf("%s should start collapsed", n.ID)
		}
	}
	if _, ok := c.HighlightedNodeID(); ok {
		t.Error("nothing should be highlighted initially")
	}
	for _, n := range c.Presentation().Nodes {
		if n.Dimmed() || n.ZIndex != 0 {
			t.Errorf("%s: expected normal emphasis, got %+v", n.ID, n.Emphasis)
		}
		if n.ToggleLabel != ShowDetailsLabel {
			t.Errorf("%s: expected %q, got %q", n.ID, ShowDetailsLabel, n.ToggleLabel)
		}
	}
}

func TestClickHighlightsOneHop(t *testing.T) {
	store := abcStore(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("A")

	if id, ok := c.HighlightedNodeID(); !ok || id != "A" {
		t.Fatalf("expected A highlighted, got %q", id)
	}
	want := map[string]bool{"A": true, "B": true}
	if diff := cmp.Diff(want, c.ConnectedSet()); diff != "" {
		t.Errorf("connected set mismatch (-want +got):\n%s", diff)
	}

	p := c.Presentation()
	a, _ := p.Node("A")
	b, _ := p.Node("B")
	cc, _ := p.Node("C")
	if a.Opacity != 1 || a.ZIndex != 1000 || !a.Connected {
		t.Errorf("A: expected elevated, got %+v", a.Emphasis)
	}
	if b.Opacity != 1 || b.ZIndex != 1000 {
		t.Errorf("B: expected elevated, got %+v", b.Emphasis)
	}
	if cc.Opacity != 0.4 || cc.ZIndex != 0 || cc.Connected {
		t.Errorf("C: expected dimmed, got %+v", cc.Emphasis)
	}

	e, _ := p.Edge("e-a-b")
	if e.Opacity != 1 || e.ZIndex != 1000 || !e.Active {
		t.Errorf("e-a-b: expected emphasized, got %+v", e.Emphasis)
	}
}

func TestClickFollowsIncomingEdges(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("llm-1")

	want := map[string]bool{"llm-1": true, "llm-2": true, "rag-3": true, "app-2": true}
	if diff := cmp.Diff(want, c.ConnectedSet()); diff != "" {
		t.Errorf("connected set mismatch (-want +got):\n%s", diff)
	}

	p := c.Presentation()
	for _, n := range p.Nodes {
		if want[n.ID] == n.Dimmed() {
			t.Errorf("%s: dimmed=%v, want connected=%v", n.ID, n.Dimmed(), want[n.ID])
		}
	}
	for _, e := range p.Edges {
		touches := e.Touches("llm-1")
		if touches && e.Opacity != 1 {
			t.Errorf("%s touches llm-1 but has opacity %v", e.ID, e.Opacity)
		}
		if !touches && e.Opacity != 0.3 {
			t.Errorf("%s should be dimmed to 0.3, got %v", e.ID, e.Opacity)
		}
	}
}

func TestIsolatedNodeHighlightsOnlyItself(t *testing.T) {
	store := abcStore(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("C")

	if got := c.ConnectedSet(); !cmp.Equal(got, map[string]bool{"C": true}) {
		t.Errorf("expected {C}, got %v", got)
	}
	e, _ := c.Presentation().Edge("e-a-b")
	if !e.Dimmed() {
		t.Error("edge not touching C should be dimmed")
	}
}

func TestSecondClickRecomputesFully(t *testing.T) {
	store := abcStore(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("A")
	c.OnNodeClick("C")

	p := c.Presentation()
	a, _ := p.Node("A")
	if !a.Dimmed() {
		t.Error("A should be dimmed after clicking C")
	}
}

func TestBackgroundClickResetsEmphasis(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("rag-2")
	c.ToggleExpand("rag-2")
	c.OnBackgroundClick()

	if _, ok := c.HighlightedNodeID(); ok {
		t.Error("highlight should be cleared")
	}
	p := c.Presentation()
	for _, n := range p.Nodes {
		if n.Emphasis != Normal {
			t.Errorf("%s: expected normal emphasis, got %+v", n.ID, n.Emphasis)
		}
	}
	for _, e := range p.Edges {
		if e.Emphasis != Normal || e.Active {
			t.Errorf("%s: expected normal emphasis, got %+v", e.ID, e.Emphasis)
		}
	}
	if !c.Expanded("rag-2") {
		t.Error("background click must not affect expansion")
	}
}

func TestToggleExpand(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())

	c.ToggleExpand("llm-2")

	for _, n := range store.Nodes() {
		if got := c.Expanded(n.ID); got != (n.ID == "llm-2") {
			t.Errorf("%s: expanded=%v", n.ID, got)
		}
	}
	view, _ := c.Presentation().Node("llm-2")
	if view.ToggleLabel != HideDetailsLabel {
		t.Errorf("expected %q, got %q", HideDetailsLabel, view.ToggleLabel)
	}

	c.ToggleExpand("llm-2")
	if c.Expanded("llm-2") {
		t.Error("toggle twice should restore collapsed")
	}
	if c.State().Expanded != nil {
		t.Errorf("expected empty expansion set, got %v", c.State().Expanded)
	}
}

func TestToggleDoesNotAffectHighlight(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeClick("app-2")
	before := c.Presentation()
	c.ToggleExpand("llm-4")
	after := c.Presentation()

	if after.Highlighted != "app-2" {
		t.Errorf("expected app-2 still highlighted, got %q", after.Highlighted)
	}
	for i := range before.Nodes {
		if before.Nodes[i].Emphasis != after.Nodes[i].Emphasis {
			t.Errorf("%s: emphasis changed on toggle", before.Nodes[i].ID)
		}
	}
}

func TestResetLayout(t *testing.T) {
	store := builtin(t)
	c := NewController(store, DefaultOptions())
	fresh := c.Presentation()

	c.OnNodeClick("llm-3")
	c.ToggleExpand("llm-3")
	c.ToggleExpand("app-1")
	c.OnNodeDrag("rag-1", diagram.Position{X: 9, Y: 9})
	c.ResetLayout()

	if diff := cmp.Diff(fresh, c.Presentation()); diff != "" {
		t.Errorf("reset should restore the fresh-load presentation (-want +got):\n%s", diff)
	}
	if !cmp.Equal(c.State(), State{}) {
		t.Errorf("expected zero state, got %+v", c.State())
	}
}

func TestDragIsCosmetic(t *testing.T) {
	store := abcStore(t)
	c := NewController(store, DefaultOptions())

	c.OnNodeDrag("B", diagram.Position{X: 42, Y: 7})

	view, _ := c.Presentation().Node("B")
	if view.Position != (diagram.Position{X: 42, Y: 7}) {
		t.Errorf("expected dragged position, got %+v", view.Position)
	}
	n, _ := store.Node("B")
	if n.Position != (diagram.Position{X: 100, Y: 0}) {
		t.Error("drag must not modify the store")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	store := abcStore(t)
	s := State{Expanded: map[string]bool{"A": true}}

	next := Reduce(store, s, ExpandToggled{ID: "B"})
	next = Reduce(store, next, NodeDragged{ID: "A", To: diagram.Position{X: 1}})

	if !cmp.Equal(s.Expanded, map[string]bool{"A": true}) {
		t.Errorf("input state mutated: %v", s.Expanded)
	}
	if s.Positions != nil {
		t.Error("input positions mutated")
	}
	if !next.IsExpanded("A") || !next.IsExpanded("B") {
		t.Errorf("unexpected result %v", next.Expanded)
	}
}

func TestReduceIgnoresUnknownNodes(t *testing.T) {
	store := abcStore(t)
	s := ReduceAll(store, State{},
		NodeClicked{ID: "A"},
		NodeClicked{ID: "ghost"},
		ExpandToggled{ID: "ghost"},
		NodeDragged{ID: "ghost"},
	)

	if s.Highlighted != "A" {
		t.Errorf("expected A to stay highlighted, got %q", s.Highlighted)
	}
	if s.Expanded != nil || s.Positions != nil {
		t.Errorf("unknown ids should not change state: %+v", s)
	}
}

func TestCustomOptions(t *testing.T) {
	store := abcStore(t)
	opts := Options{NodeDimOpacity: 0.2, EdgeDimOpacity: 0.1, ElevatedZ: 5}
	p := Present(store, State{Highlighted: "C"}, opts)

	a, _ := p.Node("A")
	if a.Opacity != 0.2 {
		t.Errorf("expected node dim 0.2, got %v", a.Opacity)
	}
	c, _ := p.Node("C")
	if c.ZIndex != 5 {
		t.Errorf("expected elevated z 5, got %d", c.ZIndex)
	}
	e, _ := p.Edge("e-a-b")
	if e.Opacity != 0.1 {
		t.Errorf("expected edge dim 0.1, got %v", e.Opacity)
	}
}

func TestOptionsNormalized(t *testing.T) {
	got := Options{NodeDimOpacity: 3, EdgeDimOpacity: -1}.normalized()
	if got != DefaultOptions() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"click llm-2", NodeClicked{ID: "llm-2"}},
		{"  select   rag-1 ", NodeClicked{ID: "rag-1"}},
		{"background", BackgroundClicked{}},
		{"BG", BackgroundClicked{}},
		{"toggle app-3", ExpandToggled{ID: "app-3"}},
		{"expand app-3", ExpandToggled{ID: "app-3"}},
		{"reset", LayoutReset{}},
		{"drag llm-1 10 -20.5", NodeDragged{ID: "llm-1", To: diagram.Position{X: 10, Y: -20.5}}},
	}

	for _, tt := range tests {
		got, err := ParseEvent(tt.line)
		if err != nil {
			t.Errorf("ParseEvent(%q) failed: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEvent(%q) = %#v, want %#v", tt.line, got, tt.want)
		}
	}
}

func TestParseEventErrors(t *testing.T) {
	for _, line := range []string{"", "click", "click a b", "background now", "drag a 1", "drag a x 1", "drag a 1 y", "hover a", "reset all"} {
		if _, err := ParseEvent(line); err == nil {
			t.Errorf("ParseEvent(%q): expected error", line)
		}
	}
}

func TestEventStringRoundTrip(t *testing.T) {
	events := []Event{
		NodeClicked{ID: "a"},
		BackgroundClicked{},
		ExpandToggled{ID: "b"},
		LayoutReset{},
		NodeDragged{ID: "c", To: diagram.Position{X: 1.5, Y: -2}},
	}
	for _, e := range events {
		got, err := ParseEvent(e.String())
		if err != nil || got != e {
			t.Errorf("round trip of %q gave %#v, %v", e.String(), got, err)
		}
	}
	if Kind(NodeDragged{ID: "c"}) != "drag" || Kind(LayoutReset{}) != "reset" {
		t.Error("Kind mismatch")
	}
}

func TestValidate(t *testing.T) {
	store := abcStore(t)

	if err := Validate(store, NodeClicked{ID: "A"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Validate(store, BackgroundClicked{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, e := range []Event{NodeClicked{ID: "Z"}, ExpandToggled{ID: "Z"}, NodeDragged{ID: "Z"}} {
		if err := Validate(store, e); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("Validate(%v): expected ErrUnknownNode, got %v", e, err)
		}
	}
}
