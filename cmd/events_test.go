package cmd

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/spf13/cobra"
)

func parseEventFlags(t *testing.T, args ...string) *eventList {
	t.Helper()
	var events eventList
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	events.bind(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v): %v", args, err)
	}
	return &events
}

func TestEventFlagsKeepCommandLineOrder(t *testing.T) {
	events := parseEventFlags(t, "--toggle", "rag-1", "--click", "llm-2", "--background", "--click", "app-1", "--reset", "--toggle=llm-1")

	want := []interact.Event{
		interact.ExpandToggled{ID: "rag-1"},
		interact.NodeClicked{ID: "llm-2"},
		interact.BackgroundClicked{},
		interact.NodeClicked{ID: "app-1"},
		interact.LayoutReset{},
		interact.ExpandToggled{ID: "llm-1"},
	}
	if diff := cmp.Diff(want, events.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if got := events.String(); got != "toggle rag-1, click llm-2, background, click app-1, reset, toggle llm-1" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventFlagsState(t *testing.T) {
	s, err := diagram.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	events := parseEventFlags(t, "--toggle", "rag-1", "--click", "llm-2", "--background", "--click", "llm-3")
	state, err := events.state(s)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Highlighted != "llm-3" {
		t.Errorf("Highlighted = %q, want llm-3", state.Highlighted)
	}
	if !state.IsExpanded("rag-1") {
		t.Error("rag-1 should be expanded")
	}
}

func TestEventFlagsRejectUnknownNode(t *testing.T) {
	s, err := diagram.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	events := parseEventFlags(t, "--click", "llm-2", "--toggle", "ghost")
	_, err = events.state(s)
	if !errors.Is(err, interact.ErrUnknownNode) {
		t.Fatalf("expected ErrUnknownNode, got %v", err)
	}
}

func TestNoEventFlagsIsFreshState(t *testing.T) {
	s, err := diagram.Builtin()
	if err != nil {
		t.Fatal(err)
	}

	events := parseEventFlags(t)
	state, err := events.state(s)
	if err != nil {
		t.Fatal(err)
	}
	if state.Highlighted != "" || len(state.Expanded) != 0 || len(state.Positions) != 0 {
		t.Errorf("expected fresh state, got %+v", state)
	}
}
