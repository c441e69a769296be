package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the session state of a round.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// DeathCause describes why a round ended.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseWall
	CauseSelf
)

// String returns the cause name.
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventAte         EventKind = iota + 1 // Head reached the food; Cell is the food cell
	EventGrew                             // A segment was appended; Cell is the new tail
	EventGameOver                         // Wall or self collision; Cell is the fatal head
	EventReset                            // The round was re-initialized
	EventFoodSpawned                      // New food placed; Cell is the food cell
	EventBoardFull                        // Food was due but no free cell exists
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventGrew:
		return "grew"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	case EventFoodSpawned:
		return "food_spawned"
	case EventBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Event is a single-tick signal. Events are returned from Tick and are not
// retained by the game.
type Event struct {
	Kind  EventKind
	Cell  core.Cell
	Cause DeathCause // Set for EventGameOver
}

// TickResult is returned by Game.Tick.
type TickResult struct {
	State  State
	Moved  bool // The movement timer fired and the snake advanced
	Events []Event
}

// Has reports whether an event of the given kind happened this tick.
func (r TickResult) Has(kind EventKind) bool {
	_, ok := r.Event(kind)
	return ok
}

// Event returns the first event of the given kind.
func (r TickResult) Event(kind EventKind) (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

// Role tells a presentation layer what occupies a cell.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleFood
)

// RoleCell pairs a cell with its role.
type RoleCell struct {
	Cell core.Cell
	Role Role
}
