package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/archmap/internal/interact"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var events eventList

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the diagram after a sequence of interactions",
		Long: `Print the diagram in the terminal. Interaction flags are applied in the
order they appear on the command line.

  archmap show --click llm-2                 # highlight llm-2 and its neighbours
  archmap show --toggle rag-1 --click rag-1  # expand rag-1, then highlight it
  archmap show --click app-1 --background    # highlight, then clear`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			state, err := events.state(s)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			ui.Banner("Interactive LLM Architecture Diagram")
			if len(events.events) > 0 {
				ui.Subtle.Printf("  events: %s\n\n", events.String())
			}
			fmt.Print(render.Diagram(interact.Present(s, state, options()), terminalStyles()))
		},
	}

	events.bind(cmd)
	return cmd
}
