// Package render turns a Presentation into terminal text, Graphviz DOT,
// JSON, or a self-contained interactive HTML page.
package render

import "github.com/msalah0e/archmap/internal/diagram"

// Styles colors terminal output. Zero-value fields leave text unstyled.
type Styles struct {
	Title  func(c diagram.Category, s string) string
	Brand  func(s string) string
	Subtle func(s string) string
	Info   func(s string) string
	Emoji  bool
	Width  int // wrap width for detail text
}

// Plain returns styles that add no escape codes.
func Plain() Styles {
	return Styles{Emoji: true, Width: 72}
}

func (st Styles) title(c diagram.Category, s string) string {
	if st.Title == nil {
		return s
	}
	return st.Title(c, s)
}

func (st Styles) brand(s string) string {
	if st.Brand == nil {
		return s
	}
	return st.Brand(s)
}

func (st Styles) subtle(s string) string {
	if st.Subtle == nil {
		return s
	}
	return st.Subtle(s)
}

func (st Styles) info(s string) string {
	if st.Info == nil {
		return s
	}
	return st.Info(s)
}

func (st Styles) icon(c diagram.Category) string {
	if !st.Emoji {
		return "●"
	}
	return c.Icon()
}

func (st Styles) width() uint {
	if st.Width <= 0 {
		return 72
	}
	return uint(st.Width)
}

// palette holds the stroke and fill colors of each category template.
var palette = map[diagram.Category]struct{ stroke, fill string }{
	diagram.CategoryModel:       {"#4a90e2", "#d4e9fc"},
	diagram.CategoryRetrieval:   {"#5cb85c", "#e3f4d7"},
	diagram.CategoryApplication: {"#a94bd1", "#f4dff7"},
}

func colors(c diagram.Category) (stroke, fill string) {
	p, ok := palette[c]
	if !ok {
		return "#888888", "#eeeeee"
	}
	return p.stroke, p.fill
}
