package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/msalah0e/archmap/internal/config"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize archmap configuration",
		Run: func(cmd *cobra.Command, args []string) {
			configShow()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				configShow()
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(config.Path())
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config file if none exists",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				if err := config.EnsureExists(); err != nil {
					ui.Bad.Printf("  Failed to write config: %v\n", err)
					os.Exit(1)
				}
				if err := os.MkdirAll(loadConfig().OverlayDir(), 0o755); err != nil {
					ui.Bad.Printf("  Failed to create overlay dir: %v\n", err)
					os.Exit(1)
				}
				ui.Good.Printf("  %s Config at %s\n", ui.StatusIcon(true), config.Path())
				ui.Subtle.Printf("  Drop .toml or .hcl diagram files into %s to extend the diagram\n", loadConfig().OverlayDir())
			},
		},
	)

	return cmd
}

func configShow() {
	ui.Subtle.Printf("# %s\n", config.Path())
	if err := toml.NewEncoder(os.Stdout).Encode(loadConfig()); err != nil {
		ui.Bad.Printf("  Failed to encode config: %v\n", err)
		os.Exit(1)
	}
}
