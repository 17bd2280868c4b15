package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/msalah0e/archmap/internal/config"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/interact"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var (
	cfg       *config.Config
	store     *diagram.Store
	diagDir   string
	noOverlay bool
	noColor   bool
)

func loadConfig() *config.Config {
	if cfg == nil {
		cfg = config.Load()
	}
	return cfg
}

// loadDiagram returns the diagram for this invocation. --dir replaces the
// built-in diagram; otherwise overlay files from the config dir are merged
// in unless --no-overlay is set.
func loadDiagram() (*diagram.Store, error) {
	if store != nil {
		return store, nil
	}

	overlay := loadConfig().OverlayDir()
	if noOverlay {
		overlay = ""
	}

	var (
		s   *diagram.Store
		err error
	)
	if diagDir != "" {
		if info, statErr := os.Stat(diagDir); statErr != nil || !info.IsDir() {
			return nil, fmt.Errorf("diagram dir %s: not a directory", diagDir)
		}
		s, err = diagram.LoadFromFS(os.DirFS(diagDir), ".")
	} else {
		s, err = diagram.LoadBuiltin(overlay)
	}
	if err != nil {
		return nil, err
	}
	store = s
	return store, nil
}

// mustLoadDiagram loads the diagram or prints every problem and exits.
func mustLoadDiagram() *diagram.Store {
	s, err := loadDiagram()
	if err != nil {
		printLoadError(err)
		os.Exit(1)
	}
	return s
}

func printLoadError(err error) {
	problems := configErrors(err)
	if len(problems) == 0 {
		ui.Bad.Printf("  Failed to load diagram: %v\n", err)
		return
	}
	ui.Bad.Printf("  %s Diagram configuration has %d problem(s):\n", ui.StatusIcon(false), len(problems))
	for _, p := range problems {
		fmt.Printf("    %s\n", p.Error())
	}
}

// configErrors flattens a joined load error into its ConfigErrors.
func configErrors(err error) []*diagram.ConfigError {
	var out []*diagram.ConfigError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, configErrors(e)...)
		}
		return out
	}
	var ce *diagram.ConfigError
	if errors.As(err, &ce) {
		out = append(out, ce)
	}
	return out
}

func options() interact.Options {
	return loadConfig().Options()
}

var rootCmd = &cobra.Command{
	Use:   "archmap",
	Short: "archmap — interactive LLM architecture diagram",
	Long: ui.Brand.Sprint(ui.Mark+" archmap") + " — explore how LLMs work, how RAG feeds them, and how apps connect\n" +
		ui.Subtle.Sprint("Click nodes to highlight their connections, expand cards for details"),
	Version: version + " " + ui.Mark,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		c := loadConfig()
		ui.SetColor(!noColor && c.UI.Color && ui.ShouldUseColor())
	},
	Run: func(cmd *cobra.Command, args []string) {
		s := mustLoadDiagram()
		p := interact.Present(s, interact.State{}, options())
		ui.Banner("Interactive LLM Architecture Diagram")
		fmt.Print(render.Diagram(p, terminalStyles()))
		fmt.Println()
		ui.Subtle.Println("  Try: archmap show --click llm-2   ·   archmap view   ·   archmap play")
	},
}

func init() {
	rootCmd.SetVersionTemplate("archmap {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&diagDir, "dir", "", "Load the diagram from this directory instead of the built-in one")
	rootCmd.PersistentFlags().BoolVar(&noOverlay, "no-overlay", false, "Ignore overlay files in the config dir")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		showCmd(),
		nodesCmd(),
		edgesCmd(),
		inspectCmd(),
		validateCmd(),
		exportCmd(),
		viewCmd(),
		playCmd(),
		serveCmd(),
		configCmd(),
		completionCmd(),
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
