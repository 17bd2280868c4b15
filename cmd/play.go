package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/msalah0e/archmap/internal/interact"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"github.com/spf13/cobra"
)

const playHelp = `  click <id>        highlight a node and its neighbours
  background        clear the highlight
  toggle <id>       show or hide a node's details
  drag <id> <x> <y> move a node (cosmetic)
  reset             restore the fresh layout
  inspect <id>      show a node's connections
  state             print the current interaction state
  help              show this help
  quit              leave
`

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Drive the diagram interactively from the terminal",
		Long: `Read interaction events line by line and reprint the diagram after each one.
Events can also be piped in:

  printf 'click llm-2\ntoggle llm-2\n' | archmap play`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := mustLoadDiagram()
			ctl := interact.NewController(s, options())
			interactive := ui.IsTerminal(os.Stdin)
			if interactive {
				ui.Banner("play")
				fmt.Print(playHelp)
				fmt.Println()
			}
			if err := runPlay(ctl, os.Stdin, os.Stdout, terminalStyles(), interactive); err != nil {
				ui.Bad.Printf("  %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// runPlay is the event loop: each line is handled to completion, and the
// view is reprinted, before the next one is read.
func runPlay(ctl *interact.Controller, in io.Reader, out io.Writer, st render.Styles, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, ui.Brand.Sprint("archmap› "))
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		switch strings.ToLower(verb) {
		case "quit", "exit", "q":
			return nil
		case "help", "?":
			fmt.Fprint(out, playHelp)
			continue
		case "state":
			printState(out, ctl)
			continue
		case "inspect":
			text, err := render.Inspect(ctl.Store(), strings.TrimSpace(rest), st)
			if err != nil {
				fmt.Fprintf(out, "%s\n", ui.Bad.Sprint(err))
				continue
			}
			fmt.Fprint(out, text)
			continue
		}

		ev, err := interact.ParseEvent(line)
		if err == nil {
			err = interact.Validate(ctl.Store(), ev)
		}
		if err != nil {
			fmt.Fprintf(out, "%s\n", ui.Bad.Sprint(err))
			continue
		}

		ctl.Apply(ev)
		fmt.Fprint(out, render.Diagram(ctl.Presentation(), st))
	}
	return scanner.Err()
}

func printState(out io.Writer, ctl *interact.Controller) {
	highlighted, ok := ctl.HighlightedNodeID()
	if !ok {
		highlighted = "none"
	}
	expanded := ctl.State().ExpandedIDs(ctl.Store())
	if len(expanded) == 0 {
		expanded = []string{"none"}
	}
	fmt.Fprintf(out, "highlighted: %s\n", highlighted)
	fmt.Fprintf(out, "expanded:    %s\n", strings.Join(expanded, ", "))
	fmt.Fprintf(out, "moved:       %d\n", len(ctl.State().Positions))
}
