package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable session state for determinism checks,
// the headless simulator summary and the HUD.
type Snapshot struct {
	Tick         uint64
	Length       int
	Head         core.Cell
	Direction    core.Direction
	Food         core.Cell
	HasFood      bool
	State        State
	Cause        DeathCause
	Resets       int
	FoodEaten    int
	MoveInterval time.Duration
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	food, hasFood := g.food.Food()
	return Snapshot{
		Tick:         g.tick,
		Length:       g.snake.Len(),
		Head:         g.snake.Head(),
		Direction:    g.snake.Direction(),
		Food:         food,
		HasFood:      hasFood,
		State:        g.state,
		Cause:        g.cause,
		Resets:       g.resets,
		FoodEaten:    g.eaten,
		MoveInterval: g.moveTimer.Interval(),
	}
}
