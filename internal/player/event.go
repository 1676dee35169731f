package player

// EventKind identifies an input event delivered to a player.
type EventKind int

const (
	// EventAction requests a move on the selected block.
	EventAction EventKind = iota
	// EventLevelUp selects a larger block (towards the root).
	EventLevelUp
	// EventLevelDown selects a smaller block (towards the leaves).
	EventLevelDown
	// EventPointer moves the pointer to Event.Point.
	EventPointer
	// EventTrigger lets a computer player make its next move.
	EventTrigger
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAction:
		return "action"
	case EventLevelUp:
		return "level up"
	case EventLevelDown:
		return "level down"
	case EventPointer:
		return "pointer"
	case EventTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Event is an input event. Action is set for EventAction, Point for
// EventPointer.
type Event struct {
	Kind   EventKind
	Action Action
	Point  Point
}
