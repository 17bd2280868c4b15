package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	var events eventList

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive diagram in your browser",
		Long: `Write a self-contained HTML page and open it in the default browser.
The page supports pan, zoom, drag, click-to-highlight, and Show/Hide Details
without a running server. Use "archmap serve" for a live session.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			state, err := events.state(s)
			if err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}

			page, err := render.HTML(render.StaticPage(s, state, options()))
			if err != nil {
				ui.Bad.Printf("  Failed to render page: %v\n", err)
				os.Exit(1)
			}

			htmlPath := filepath.Join(os.TempDir(), "archmap.html")
			if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
				ui.Bad.Printf("  Failed to write HTML: %v\n", err)
				os.Exit(1)
			}

			if err := openBrowser(htmlPath); err != nil {
				fmt.Printf("  HTML written to: %s\n", htmlPath)
				fmt.Println("  Open it in your browser to explore the diagram")
				return
			}

			nodes, edges := s.Len()
			ui.Good.Printf("  %s Opened diagram (%d nodes, %d edges)\n", ui.StatusIcon(true), nodes, edges)
			ui.Subtle.Printf("  %s\n", htmlPath)
		},
	}

	events.bind(cmd)
	return cmd
}

// openBrowser opens target with the platform's default handler.
func openBrowser(target string) error {
	var openCmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		openCmd = exec.Command("open", target)
	case "linux":
		openCmd = exec.Command("xdg-open", target)
	default:
		openCmd = exec.Command("cmd", "/c", "start", target)
	}
	return openCmd.Start()
}
