package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/msalah0e/archmap/internal/diagram"
	"github.com/msalah0e/archmap/internal/render"
	"github.com/msalah0e/archmap/internal/ui"
	"golang.org/x/term"
)

// terminalStyles maps render styles onto the ui palette. Colors are turned
// off globally by ui.SetColor, so the same styles serve piped output.
func terminalStyles() render.Styles {
	return render.Styles{
		Title: func(c diagram.Category, s string) string {
			return ui.CategoryColor(c).Sprint(s)
		},
		Brand:  sprint(ui.Brand),
		Subtle: sprint(ui.Subtle),
		Info:   sprint(ui.Info),
		Emoji:  loadConfig().UI.Emoji,
		Width:  wrapWidth(),
	}
}

func sprint(c *color.Color) func(string) string {
	return func(s string) string { return c.Sprint(s) }
}

// wrapWidth sizes detail text to the terminal, leaving room for the indent.
func wrapWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 72
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 40 {
		return 72
	}
	return min(w-8, 100)
}
