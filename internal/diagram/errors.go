package diagram

import "fmt"

// ErrorKind classifies a configuration error found while loading a diagram.
type ErrorKind string

const (
	KindMissingNode     ErrorKind = "missing-node"
	KindDuplicateNode   ErrorKind = "duplicate-node"
	KindDuplicateEdge   ErrorKind = "duplicate-edge"
	KindUnknownCategory ErrorKind = "unknown-category"
	KindUnknownStyle    ErrorKind = "unknown-style"
	KindEmptyID         ErrorKind = "empty-id"
)

// ConfigError describes a diagram that must not be rendered.
type ConfigError struct {
	Kind   ErrorKind
	EdgeID string
	NodeID string
	Value  string // offending category or style; "node" or "edge" for empty ids
	File   string
}

func (e *ConfigError) Error() string {
	var msg string
	switch e.Kind {
	case KindMissingNode:
		msg = fmt.Sprintf("edge %q references missing node %q", e.EdgeID, e.NodeID)
	case KindDuplicateNode:
		msg = fmt.Sprintf("duplicate node id %q", e.NodeID)
	case KindDuplicateEdge:
		msg = fmt.Sprintf("duplicate edge id %q", e.EdgeID)
	case KindUnknownCategory:
		msg = fmt.Sprintf("node %q has unknown category %q", e.NodeID, e.Value)
	case KindUnknownStyle:
		msg = fmt.Sprintf("edge %q has unknown style %q", e.EdgeID, e.Value)
	case KindEmptyID:
		msg = e.Value + " with empty id"
	default:
		msg = string(e.Kind)
	}
	if e.File != "" {
		return "diagram config: " + e.File + ": " + msg
	}
	return "diagram config: " + msg
}
