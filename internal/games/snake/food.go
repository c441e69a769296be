package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// FoodManager tracks the zero-or-one food cell on the board.
type FoodManager struct {
	grid    core.Grid
	mode    config.FoodSpawnMode
	cell    core.Cell
	present bool
}

// NewFoodManager creates an empty food manager for the grid.
func NewFoodManager(grid core.Grid, mode config.FoodSpawnMode) *FoodManager {
	return &FoodManager{grid: grid, mode: mode}
}

// Food returns the food cell and whether food is on the board.
func (m *FoodManager) Food() (core.Cell, bool) {
	return m.cell, m.present
}

// ShouldSpawn reports whether new food is due this tick.
// Food is never due while food exists. In timer mode it is due only on the
// tick the spawn timer fired.
func (m *FoodManager) ShouldSpawn(timerFired bool) bool {
	if m.present {
		return false
	}
	if m.mode == config.FoodSpawnImmediate {
		return true
	}
	return timerFired
}

// Spawn places food on a random cell not covered by the snake.
// Returns core.ErrBoardFull when the snake covers the whole grid.
// Panics if food is already present.
func (m *FoodManager) Spawn(rng *rand.Rand, snakeCells []core.Cell) (core.Cell, error) {
	if m.present {
		panic("snake: spawn while food is present")
	}

	occupied := make(map[core.Cell]struct{}, len(snakeCells))
	for _, c := range snakeCells {
		occupied[c] = struct{}{}
	}

	c, err := m.grid.RandomFreeCell(rng, occupied)
	if err != nil {
		return core.Cell{}, err
	}
	m.Place(c)
	return c, nil
}

// Place puts food on a specific cell, replacing any existing food.
func (m *FoodManager) Place(c core.Cell) {
	m.cell = c
	m.present = true
}

// ConsumeIfEaten removes the food if head is on the food cell.
func (m *FoodManager) ConsumeIfEaten(head core.Cell) bool {
	if !m.present || head != m.cell {
		return false
	}
	m.Clear()
	return true
}

// Clear removes any food from the board.
func (m *FoodManager) Clear() {
	m.present = false
	m.cell = core.Cell{}
}
