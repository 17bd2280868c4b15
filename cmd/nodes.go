package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func nodesCmd() *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "nodes",
		Short:   "List diagram nodes",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()

			nodes := s.Nodes()
			if category != "" {
				c, ok := diagram.ParseCategory(category)
				if !ok {
					ui.Bad.Printf("  Unknown category %q (model, retrieval, application)\n", category)
					os.Exit(1)
				}
				nodes = s.ByCategory(c)
			}

			if asJSON {
				printJSON(nodes)
				return
			}

			ui.Banner("nodes")
			var rows [][]string
			for _, n := range nodes {
				rows = append(rows, []string{n.ID, n.Category.Label(), n.Title, n.Description})
			}
			ui.Table([]string{"ID", "CATEGORY", "TITLE", "DESCRIPTION"}, rows)
			fmt.Println()
			ui.Subtle.Printf("  %d node(s)\n", len(nodes))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list nodes of this category (model, retrieval, application)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	_ = cmd.RegisterFlagCompletionFunc("category", categoryCompletionFunc)
	return cmd
}

func edgesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List diagram edges",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			edges := s.Edges()

			if asJSON {
				printJSON(edges)
				return
			}

			ui.Banner("edges")
			var rows [][]string
			for _, e := range edges {
				style := string(e.Style)
				if style == "" {
					style = "default"
				}
				rows = append(rows, []string{e.ID, e.Source, e.Target, style, e.Label})
			}
			ui.Table([]string{"ID", "SOURCE", "TARGET", "STYLE", "LABEL"}, rows)
			fmt.Println()
			ui.Subtle.Printf("  %d edge(s)\n", len(edges))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		ui.Bad.Printf("  Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
