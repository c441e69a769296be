package main

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func simConfig() config.Config {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 12, 12
	cfg.Rules.FoodSpawn = config.FoodSpawnImmediate
	return cfg
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{Ticks: 3000, Step: 100 * time.Millisecond, TurnChance: 0.2, Seed: 99}

	a, err := simulate(simConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(simConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a != b {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestSimulateCounts(t *testing.T) {
	opts := simOptions{Ticks: 2000, Step: 100 * time.Millisecond, TurnChance: 0.1, Seed: 3}

	sum, err := simulate(simConfig(), opts, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if sum.Ticks != 2000 {
		t.Errorf("Ticks = %d, expected 2000", sum.Ticks)
	}
	// 500ms move interval at 100ms per tick.
	if sum.Moves != 400 {
		t.Errorf("Moves = %d, expected 400", sum.Moves)
	}
	if sum.MaxLength < 2 {
		t.Errorf("MaxLength = %d, expected at least 2", sum.MaxLength)
	}
	if sum.Rounds != 1+sum.WallDeaths+sum.SelfDeaths {
		t.Errorf("Rounds = %d, expected one more than the %d deaths", sum.Rounds, sum.WallDeaths+sum.SelfDeaths)
	}
	if sum.FoodEaten == 0 {
		t.Error("a food-seeking policy with instant food should eat something in 400 moves")
	}
}

func TestSimulateRejectsZeroStep(t *testing.T) {
	_, err := simulate(simConfig(), simOptions{Ticks: 1}, log.New(io.Discard))
	if err == nil {
		t.Error("simulate() should reject a zero step")
	}
}

func TestSteerAvoidsWall(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 10, 10
	cfg.Snake.StartX, cfg.Snake.StartY, cfg.Snake.StartDirection = 8, 5, "right"
	game, err := snake.New(cfg, snake.WithSeed(1))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	game.Tick(cfg.Timing.MoveInterval.Std(), core.NewInputFrame())
	// Head at (9,5) facing the right wall.

	for seed := range int64(20) {
		d, ok := steer(game, rand.New(rand.NewSource(seed)), 0)
		if !ok || (d != core.DirUp && d != core.DirDown) {
			t.Fatalf("steer() = %v %v, expected a turn away from the wall", d, ok)
		}
	}
}

func TestTurns(t *testing.T) {
	for _, d := range []core.Direction{core.DirLeft, core.DirUp, core.DirRight, core.DirDown} {
		if turnLeft(d) == d || turnLeft(d) == d.Opposite() {
			t.Errorf("turnLeft(%v) = %v, expected a perpendicular direction", d, turnLeft(d))
		}
		if turnRight(d) != turnLeft(d).Opposite() {
			t.Errorf("turnRight(%v) = %v, expected opposite of turnLeft", d, turnRight(d))
		}
		if a, ok := directionAction(d).Direction(); !ok || a != d {
			t.Errorf("directionAction(%v) round trip = %v", d, a)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, simSummary{Ticks: 10, Rounds: 2, WallDeaths: 1, MaxLength: 4})

	out := buf.String()
	for _, want := range []string{"ticks", "10", "max length", "1 wall, 0 self"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
