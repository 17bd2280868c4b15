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

var exportFormats = []string{"json", "dot", "html"}

// renderExport renders the diagram at state in the named format.
func renderExport(s *diagram.Store, state interact.State, opts interact.Options, format string) (string, error) {
	switch format {
	case "json":
		data, err := render.JSON(interact.Present(s, state, opts))
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case "dot":
		return render.DOT(interact.Present(s, state, opts)), nil
	case "html":
		return render.HTML(render.StaticPage(s, state, opts))
	default:
		return "", fmt.Errorf("unknown format %q (json, dot, html)", format)
	}
}

func exportCmd() *cobra.Command {
	var (
		format string
		output string
		events eventList
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the diagram as JSON, Graphviz DOT, or standalone HTML",
		Long: `Export the diagram after applying any interaction flags.

  archmap export --format dot --click llm-2 | dot -Kneato -n -Tsvg > llm.svg
  archmap export --format html -o diagram.html
  archmap export --format json --toggle rag-2`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			state, err := events.state(s)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			out, err := renderExport(s, state, options(), format)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			if output == "" || output == "-" {
				fmt.Print(out)
				return
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				ui.Bad.Printf("  Failed to write %s: %v\n", output, err)
				os.Exit(1)
			}
			ui.Good.Printf("  %s Exported %s to %s\n", ui.StatusIcon(true), format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json, dot, html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(exportFormats, cobra.ShellCompDirectiveNoFileComp))
	events.bind(cmd)
	return cmd
}
