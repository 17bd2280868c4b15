package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

// inspection is the JSON shape of "archmap inspect --json".
type inspection struct {
	Node      diagram.Node   `json:"node"`
	Connected []string       `json:"connected"`
	Outgoing  []diagram.Edge `json:"outgoing"`
	Incoming  []diagram.Edge `json:"incoming"`
}

func inspectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "inspect <node-id>",
		Short:             "Show one node with its incoming and outgoing connections",
		Aliases:           []string{"info"},
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: nodeCompletionFunc,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			id := args[0]

			n, ok := s.Node(id)
			if !ok {
				ui.Bad.Printf("  No node %q\n", id)
				ui.Subtle.Println("  Run `archmap nodes` to list node ids")
				os.Exit(1)
			}

			if asJSON {
				out, in := s.EdgesOf(id)
				printJSON(inspection{
					Node:      n,
					Connected: connectedIDs(s, id),
					Outgoing:  nonNil(out),
					Incoming:  nonNil(in),
				})
				return
			}

			text, err := render.Inspect(s, id, terminalStyles())
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}
			fmt.Print(text)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

// connectedIDs lists the connected set of id in load order.
func connectedIDs(s *diagram.Store, id string) []string {
	set := interact.ConnectedSet(s, id)
	ids := make([]string, 0, len(set))
	for _, n := range s.Nodes() {
		if set[n.ID] {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

func nonNil(edges []diagram.Edge) []diagram.Edge {
	if edges == nil {
		return []diagram.Edge{}
	}
	return edges
}
