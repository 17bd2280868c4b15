package cmd

import (
	"fmt"
	"strings"

	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/spf13/cobra"
)

// eventList collects interaction events from command-line flags in the
// order they were given, so "--click a --toggle b --background" replays
// exactly that sequence.
type eventList struct {
	events []interact.Event
}

// eventFlag is a flag value that appends one event per occurrence.
type eventFlag struct {
	verb string
	bare bool // takes no node id, like --background
	list *eventList
}

func (f *eventFlag) String() string { return "" }

func (f *eventFlag) Type() string {
	if f.bare {
		return "bool"
	}
	return "node-id"
}

func (f *eventFlag) Set(v string) error {
	line := f.verb
	if f.bare {
		if v != "true" {
			return nil
		}
	} else {
		line += " " + v
	}
	ev, err := interact.ParseEvent(line)
	if err != nil {
		return err
	}
	f.list.events = append(f.list.events, ev)
	return nil
}

// bind registers the event flags on cmd.
func (l *eventList) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Var(&eventFlag{verb: "click", list: l}, "click", "Click a node (repeatable)")
	flags.Var(&eventFlag{verb: "toggle", list: l}, "toggle", "Toggle a node's details (repeatable)")
	flags.Var(&eventFlag{verb: "background", bare: true, list: l}, "background", "Click the background")
	flags.Var(&eventFlag{verb: "reset", bare: true, list: l}, "reset", "Reset the layout")
	flags.Lookup("background").NoOptDefVal = "true"
	flags.Lookup("reset").NoOptDefVal = "true"

	_ = cmd.RegisterFlagCompletionFunc("click", nodeCompletionFunc)
	_ = cmd.RegisterFlagCompletionFunc("toggle", nodeCompletionFunc)
}

// state replays the collected events against s, rejecting unknown ids.
func (l *eventList) state(s *diagram.Store) (interact.State, error) {
	for _, ev := range l.events {
		if err := interact.Validate(s, ev); err != nil {
			return interact.State{}, fmt.Errorf("--%s: %w", interact.Kind(ev), err)
		}
	}
	return interact.ReduceAll(s, interact.State{}, l.events...), nil
}

func (l *eventList) String() string {
	parts := make([]string, len(l.events))
	for i, ev := range l.events {
		parts[i] = ev.String()
	}
	return strings.Join(parts, ", ")
}
