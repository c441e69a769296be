// Package snake implements the tick-driven snake simulation: the snake body,
// food placement and the round controller that ties them to wall-clock time.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is one snake session. It owns the snake, the food and both timers,
// and is advanced by the host through Tick. Game is not safe for concurrent
// use; hosts run one Game per goroutine.
type Game struct {
	cfg    config.Config
	grid   core.Grid
	rng    *rand.Rand
	logger *log.Logger

	snake     *Snake
	food      *FoodManager
	moveTimer *core.Timer
	foodTimer *core.Timer

	state State
	cause DeathCause

	tick      uint64
	resets    int
	eaten     int // Food eaten in the current round
	boardFull bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithSeed seeds the food placement RNG.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the food placement RNG directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// New creates a session in the Running state with the spawn snake and no food.
// Returns an error wrapping config.ErrInvalidConfig if cfg fails validation.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		grid:      cfg.GridSize(),
		logger:    log.New(io.Discard),
		food:      NewFoodManager(cfg.GridSize(), cfg.Rules.FoodSpawn),
		moveTimer: core.NewTimer(cfg.Timing.MoveInterval.Std()),
		foodTimer: core.NewTimer(cfg.Timing.FoodInterval.Std()),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.resetRound()
	g.logger.Debug("session created",
		"grid", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"move_interval", cfg.Timing.MoveInterval.Std(),
		"food_interval", cfg.Timing.FoodInterval.Std(),
		"food_spawn", cfg.Rules.FoodSpawn,
		"auto_reset", cfg.Rules.AutoReset)
	return g, nil
}

// Tick advances the simulation by elapsed wall-clock time.
//
// Per tick, in order: the sampled direction is applied, the movement timer
// advances the snake when it fires, wall and self collisions end the round,
// eaten food grows the snake at the pre-move tail, a finished round resets
// when auto reset is on, and the food timer spawns food when none exists.
func (g *Game) Tick(elapsed time.Duration, in core.InputFrame) TickResult {
	g.tick++
	res := TickResult{}

	if in.Has(core.ActionRestart) {
		g.Restart()
		res.Events = append(res.Events, Event{Kind: EventReset, Cell: g.snake.Head()})
		res.State = g.state
		return res
	}

	if g.state == StateGameOver {
		res.State = g.state
		return res
	}

	if d, ok := in.Direction(); ok {
		g.snake.SetDirection(d)
	}

	g.moveTimer.Tick(elapsed)
	if g.moveTimer.Finished() {
		res.Moved = true
		g.step(&res)
	}

	if g.state == StateGameOver {
		if g.cfg.Rules.AutoReset {
			g.Restart()
			res.Events = append(res.Events, Event{Kind: EventReset, Cell: g.snake.Head()})
		}
		res.State = g.state
		return res
	}

	g.foodTimer.Tick(elapsed)
	if g.food.ShouldSpawn(g.foodTimer.Finished()) {
		g.spawnFood(&res)
	}

	res.State = g.state
	return res
}

// step performs one movement and resolves its consequences.
func (g *Game) step(res *TickResult) {
	out := g.snake.Advance()

	switch {
	case !g.grid.Contains(out.Head):
		g.endRound(res, CauseWall, out.Head)
		return
	case slices.Contains(out.PreMove, out.Head):
		g.endRound(res, CauseSelf, out.Head)
		return
	}

	if !g.food.ConsumeIfEaten(out.Head) {
		return
	}
	g.eaten++
	res.Events = append(res.Events, Event{Kind: EventAte, Cell: out.Head})

	g.snake.Grow(out.LastTail)
	res.Events = append(res.Events, Event{Kind: EventGrew, Cell: out.LastTail})
	g.logger.Debug("snake grew", "length", g.snake.Len(), "tail", out.LastTail)
}

func (g *Game) endRound(res *TickResult, cause DeathCause, head core.Cell) {
	g.state = StateGameOver
	g.cause = cause
	res.Events = append(res.Events, Event{Kind: EventGameOver, Cell: head, Cause: cause})
	g.logger.Info("round over",
		"cause", cause,
		"head", head,
		"length", g.snake.Len(),
		"eaten", g.eaten,
		"tick", g.tick)
}

func (g *Game) spawnFood(res *TickResult) {
	c, err := g.food.Spawn(g.rng, g.snake.Cells())
	if err != nil {
		res.Events = append(res.Events, Event{Kind: EventBoardFull})
		if !g.boardFull {
			g.logger.Warn("no free cell for food", "length", g.snake.Len(), "err", err)
		}
		g.boardFull = true
		return
	}
	g.boardFull = false
	res.Events = append(res.Events, Event{Kind: EventFoodSpawned, Cell: c})
	g.logger.Debug("food spawned", "cell", c)
}

// Restart discards the current round and starts a new one: a fresh spawn
// snake, no food and both timers rearmed.
func (g *Game) Restart() {
	g.resets++
	g.resetRound()
	g.logger.Debug("round reset", "resets", g.resets)
}

func (g *Game) resetRound() {
	g.snake = NewSnake(g.cfg.StartCell(), g.cfg.StartDirection())
	g.food.Clear()
	g.moveTimer.Reset()
	g.foodTimer.Reset()
	g.state = StateRunning
	g.cause = CauseNone
	g.eaten = 0
	g.boardFull = false
}

// PlaceFood puts food on a cell, replacing any existing food.
// Hosts and tests use it to script a round.
func (g *Game) PlaceFood(c core.Cell) {
	g.food.Place(c)
}

// State returns the session state.
func (g *Game) State() State {
	return g.state
}

// Cause returns why the last round ended, or CauseNone while running.
func (g *Game) Cause() DeathCause {
	return g.cause
}

// Snake returns the live snake. Callers must not mutate it outside Tick.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (core.Cell, bool) {
	return g.food.Food()
}

// Grid returns the board bounds.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Config returns the rules the session was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Cells lists every occupied cell with its role, head first and food last.
func (g *Game) Cells() []RoleCell {
	body := g.snake.Cells()
	cells := make([]RoleCell, 0, len(body)+1)
	for i, c := range body {
		role := RoleBody
		if i == 0 {
			role = RoleHead
		}
		cells = append(cells, RoleCell{Cell: c, Role: role})
	}
	if f, ok := g.food.Food(); ok {
		cells = append(cells, RoleCell{Cell: f, Role: RoleFood})
	}
	return cells
}
