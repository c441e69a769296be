package snake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := core.NewGrid(10, 10)
	body := []core.Cell{{X: 4, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}}
	rng := rand.New(rand.NewSource(7))

	for trial := range 1000 {
		m := NewFoodManager(grid, config.FoodSpawnTimer)
		c, err := m.Spawn(rng, body)
		if err != nil {
			t.Fatalf("trial %d: Spawn() failed: %v", trial, err)
		}
		if slices.Contains(body, c) {
			t.Fatalf("trial %d: food spawned on snake at %v", trial, c)
		}
		if !grid.Contains(c) {
			t.Fatalf("trial %d: food spawned outside the grid at %v", trial, c)
		}
	}
}

func TestSpawnRandomSnakes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := range 200 {
		grid := core.NewGrid(2+rng.Intn(10), 2+rng.Intn(10))
		n := 1 + rng.Intn(grid.Area()-1)
		body := make([]core.Cell, 0, n)
		for _, i := range rng.Perm(grid.Area())[:n] {
			body = append(body, core.Cell{X: i % grid.Width, Y: i / grid.Width})
		}

		m := NewFoodManager(grid, config.FoodSpawnTimer)
		c, err := m.Spawn(rng, body)
		if err != nil {
			t.Fatalf("trial %d: Spawn() failed: %v", trial, err)
		}
		if slices.Contains(body, c) {
			t.Fatalf("trial %d: food spawned on snake at %v", trial, c)
		}
	}
}

func TestSpawnBoardFull(t *testing.T) {
	m := NewFoodManager(core.NewGrid(1, 1), config.FoodSpawnTimer)

	_, err := m.Spawn(rand.New(rand.NewSource(1)), []core.Cell{{X: 0, Y: 0}})
	if !errors.Is(err, core.ErrBoardFull) {
		t.Errorf("Spawn() = %v, expected ErrBoardFull", err)
	}
	if _, ok := m.Food(); ok {
		t.Error("no food should be present after a failed spawn")
	}
}

func TestSpawnPanicsWhenFoodPresent(t *testing.T) {
	m := NewFoodManager(core.NewGrid(5, 5), config.FoodSpawnTimer)
	m.Place(core.Cell{X: 1, Y: 1})

	defer func() {
		if recover() == nil {
			t.Error("Spawn with food present should panic")
		}
	}()
	m.Spawn(rand.New(rand.NewSource(1)), nil) //nolint:errcheck // panics
}

func TestShouldSpawn(t *testing.T) {
	tests := []struct {
		name       string
		mode       config.FoodSpawnMode
		present    bool
		timerFired bool
		expected   bool
	}{
		{"timer fired", config.FoodSpawnTimer, false, true, true},
		{"timer idle", config.FoodSpawnTimer, false, false, false},
		{"timer fired with food", config.FoodSpawnTimer, true, true, false},
		{"immediate", config.FoodSpawnImmediate, false, false, true},
		{"immediate with food", config.FoodSpawnImmediate, true, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewFoodManager(core.NewGrid(5, 5), tc.mode)
			if tc.present {
				m.Place(core.Cell{X: 2, Y: 2})
			}
			if got := m.ShouldSpawn(tc.timerFired); got != tc.expected {
				t.Errorf("ShouldSpawn(%v) = %v, expected %v", tc.timerFired, got, tc.expected)
			}
		})
	}
}

func TestConsumeIfEaten(t *testing.T) {
	m := NewFoodManager(core.NewGrid(5, 5), config.FoodSpawnTimer)
	m.Place(core.Cell{X: 2, Y: 2})

	if m.ConsumeIfEaten(core.Cell{X: 2, Y: 3}) {
		t.Error("ConsumeIfEaten on another cell should return false")
	}
	if !m.ConsumeIfEaten(core.Cell{X: 2, Y: 2}) {
		t.Error("ConsumeIfEaten on the food cell should return true")
	}
	if _, ok := m.Food(); ok {
		t.Error("food should be gone after being eaten")
	}
	if m.ConsumeIfEaten(core.Cell{X: 2, Y: 2}) {
		t.Error("eaten food cannot be eaten twice")
	}
}
