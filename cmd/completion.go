package cmd

import (
	"strings"

	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
func completionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate completion scripts for your shell.

  # Bash (add to ~/.bashrc)
  eval "$(archmap completion bash)"

  # Zsh (add to ~/.zshrc)
  eval "$(archmap completion zsh)"

  # Fish
  archmap completion fish | source

  # PowerShell
  archmap completion powershell | Out-String | Invoke-Expression`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				_ = rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				_ = rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				_ = rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				_ = rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}

	return cmd
}

// nodeCompletionFunc provides dynamic completion for node ids.
func nodeCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := loadDiagram()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, n := range s.Nodes() {
		if strings.HasPrefix(n.ID, toComplete) {
			completions = append(completions, n.ID+"\t"+n.Title)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// categoryCompletionFunc completes the short category names.
func categoryCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, c := range []diagram.Category{diagram.CategoryModel, diagram.CategoryRetrieval, diagram.CategoryApplication} {
		short, _, _ := strings.Cut(string(c), "-")
		completions = append(completions, short+"\t"+c.Label())
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
