package nav

import "github.com/matzehuels/miniworld/pkg/sketch"

// Action is a user intent understood by a navigator.
type Action int

// Actions.
const (
	ActionNone Action = iota
	ActionPrevious
	ActionNext
	ActionPointerDown
	ActionPointerMove
	ActionPointerUp
	ActionClear
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionPrevious:    "previous",
	ActionNext:        "next",
	ActionPointerDown: "pointer-down",
	ActionPointerMove: "pointer-move",
	ActionPointerUp:   "pointer-up",
	ActionClear:       "clear",
}

// String returns the action name.
func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Event is one input event. Point is used by pointer down and move.
type Event struct {
	Action Action
	Point  sketch.Point
}

// bindings registers one handler per action.
func (n *Navigator) bindings() map[Action]func(Event) {
	return map[Action]func(Event){
		ActionPrevious:    func(Event) { n.GoPrevious() },
		ActionNext:        func(Event) { n.GoNext() },
		ActionPointerDown: func(e Event) { n.PointerDown(e.Point) },
		ActionPointerMove: func(e Event) { n.PointerMove(e.Point) },
		ActionPointerUp:   func(Event) { n.PointerUp() },
		ActionClear:       func(Event) { n.ClearDrawing() },
	}
}

// Dispatch routes e to its handler. It reports whether the action is bound;
// unbound actions are ignored.
func (n *Navigator) Dispatch(e Event) bool {
	h, ok := n.handlers[e.Action]
	if !ok {
		return false
	}
	h(e)
	return true
}
