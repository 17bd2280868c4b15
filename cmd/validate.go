package cmd

import (
	"fmt"
	"os"

	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a diagram for configuration errors",
		Long: `Load a diagram and report every configuration error: edges that name
missing nodes, duplicate ids, unknown categories or edge styles.

  archmap validate                 # built-in diagram plus overlays
  archmap validate --dir ./diagram # a diagram directory of .toml/.hcl files`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s, err := loadDiagram()
			if err != nil {
				printLoadError(err)
				os.Exit(1)
			}

			nodes, edges := s.Len()
			source := "built-in diagram"
			if diagDir != "" {
				source = diagDir
			}
			ui.Good.Printf("  %s %s is valid\n", ui.StatusIcon(true), source)
			fmt.Printf("  %s  %d\n", ui.Brand.Sprintf("%-12s", "Nodes"), nodes)
			fmt.Printf("  %s  %d\n", ui.Brand.Sprintf("%-12s", "Edges"), edges)
			for _, c := range s.Categories() {
				fmt.Printf("  %s  %d\n", ui.Subtle.Sprintf("%-12s", c.Label()), len(s.ByCategory(c)))
			}
		},
	}
}
