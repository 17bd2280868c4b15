package interact

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/msalah0e/archmap/internal/diagram"
)

// ErrUnknownNode is returned by Validate for events naming a node the store
// does not have.
var ErrUnknownNode = errors.New("unknown node")

// Event is something the rendering surface reports back.
type Event interface {
	// String renders the event in the textual grammar accepted by ParseEvent.
	String() string
}

// NodeClicked is a click on a rendered node.
type NodeClicked struct{ ID string }

// BackgroundClicked is a click on empty canvas.
type BackgroundClicked struct{}

// ExpandToggled is a press of a node's Show/Hide Details button.
type ExpandToggled struct{ ID string }

// LayoutReset is a press of the Reset Layout control.
type LayoutReset struct{}

// NodeDragged reports a node dropped at a new position. It is cosmetic only.
type NodeDragged struct {
	ID string
	To diagram.Position
}

func (e NodeClicked) String() string     { return "click " + e.ID }
func (BackgroundClicked) String() string { return "background" }
func (e ExpandToggled) String() string   { return "toggle " + e.ID }
func (LayoutReset) String() string       { return "reset" }

func (e NodeDragged) String() string {
	return fmt.Sprintf("drag %s %s %s", e.ID,
		strconv.FormatFloat(e.To.X, 'f', -1, 64),
		strconv.FormatFloat(e.To.Y, 'f', -1, 64))
}

// Kind returns the first word of an event's textual form.
func Kind(e Event) string {
	s := e.String()
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseEvent parses one line of the event grammar:
//
//	click <id>
//	background
//	toggle <id>
//	reset
//	drag <id> <x> <y>
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty event")
	}

	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "click", "select":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: click <node-id>")
		}
		return NodeClicked{ID: args[0]}, nil
	case "background", "bg", "pane":
		if len(args) != 0 {
			return nil, fmt.Errorf("usage: background")
		}
		return BackgroundClicked{}, nil
	case "toggle", "expand":
		if len(args) != 1 {
			return nil, fmt.Errorf("usage: toggle <node-id>")
		}
		return ExpandToggled{ID: args[0]}, nil
	case "reset":
		if len(args) != 0 {
			return nil, fmt.Errorf("usage: reset")
		}
		return LayoutReset{}, nil
	case "drag", "move":
		if len(args) != 3 {
			return nil, fmt.Errorf("usage: drag <node-id> <x> <y>")
		}
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("drag: bad x %q", args[1])
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return nil, fmt.Errorf("drag: bad y %q", args[2])
		}
		return NodeDragged{ID: args[0], To: diagram.Position{X: x, Y: y}}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", fields[0])
	}
}

// Validate checks that an event only names nodes present in store. Events
// from a real rendering surface always pass; this guards text input.
func Validate(store *diagram.Store, e Event) error {
	var id string
	switch ev := e.(type) {
	case NodeClicked:
		id = ev.ID
	case ExpandToggled:
		id = ev.ID
	case NodeDragged:
		id = ev.ID
	default:
		return nil
	}
	if !store.HasNode(id) {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	return nil
}
