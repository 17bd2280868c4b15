package diagram

import "strings"

// Category selects the presentation template a node is drawn with.
type Category string

const (
	CategoryModel       Category = "model-internal"
	CategoryRetrieval   Category = "retrieval-component"
	CategoryApplication Category = "application-component"
)

// categories lists every known category in presentation order.
var categories = []Category{CategoryModel, CategoryRetrieval, CategoryApplication}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, k := range categories {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory accepts a full category name or its leading word, such as
// "retrieval" for CategoryRetrieval.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range categories {
		if s == string(c) || strings.HasPrefix(string(c), s+"-") {
			return c, true
		}
	}
	return "", false
}

// Icon returns the glyph shown at the top of a node card.
func (c Category) Icon() string {
	switch c {
	case CategoryModel:
		return "\U0001F9E0" // 🧠
	case CategoryRetrieval:
		return "\U0001F4DA" // 📚
	case CategoryApplication:
		return "\U0001F50C" // 🔌
	default:
		return "●"
	}
}

// Label is the human-readable section heading for a category.
func (c Category) Label() string {
	switch c {
	case CategoryModel:
		return "LLM Internals"
	case CategoryRetrieval:
		return "Retrieval (RAG)"
	case CategoryApplication:
		return "Application Integration"
	default:
		return string(c)
	}
}

// RouteStyle is how an edge is routed between its endpoints.
type RouteStyle string

const (
	RouteDefault  RouteStyle = ""
	RouteStraight RouteStyle = "straight"
	RouteStep     RouteStyle = "step"
	RouteSmooth   RouteStyle = "smooth"
)

// Valid reports whether s is a supported routing style.
func (s RouteStyle) Valid() bool {
	switch s {
	case RouteDefault, RouteStraight, RouteStep, RouteSmooth:
		return true
	}
	return false
}

// Position is an author-assigned canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is one architectural component on the diagram.
type Node struct {
	ID          string   `json:"id"`
	Category    Category `json:"category"`
	Position    Position `json:"position"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     string   `json:"details"`
}

// Edge is a directed relationship between two nodes.
type Edge struct {
	ID     string     `json:"id"`
	Source string     `json:"source"`
	Target string     `json:"target"`
	Label  string     `json:"label,omitempty"`
	Style  RouteStyle `json:"style,omitempty"`
}

// Touches reports whether the edge has id as its source or target.
func (e Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}
