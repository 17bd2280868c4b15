package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/msalah0e/archmap/internal/diagram"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Category colors, matching the canvas palette.
var (
	Model       = color.New(color.FgBlue, color.Bold)
	Retrieval   = color.New(color.FgGreen, color.Bold)
	Application = color.New(color.FgMagenta, color.Bold)
)

const Mark = "\u25C8" // ◈

// Banner prints the archmap banner.
func Banner(subtitle string) {
	fmt.Printf("%s %s — %s\n\n", Mark, Brand.Sprint("archmap"), subtitle)
}

// CategoryColor returns the color used for a node category's titles.
func CategoryColor(c diagram.Category) *color.Color {
	switch c {
	case diagram.CategoryModel:
		return Model
	case diagram.CategoryRetrieval:
		return Retrieval
	case diagram.CategoryApplication:
		return Application
	default:
		return Brand
	}
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Println(headerLine)
	Subtle.Println(sepLine)

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Println(line)
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// WarnIcon returns a warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}
