// Package core provides fundamental types and utilities for the snake simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrBoardFull is returned when no free cell is left on the grid.
var ErrBoardFull = errors.New("core: board is full")

// Cell is a discrete integer grid coordinate.
// Cells are compared by value and can be used as map keys.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given delta.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Direction represents a facing on the grid.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the unit vector for the direction.
// Up increases Y; presentation layers flip the axis when drawing top-down.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name produced by String back into a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return DirLeft, true
	case "up":
		return DirUp, true
	case "right":
		return DirRight, true
	case "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Grid describes the bounds of the playing field.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains returns true if the cell lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width && c.Y < g.Height
}

// RandomFreeCell draws a uniformly random cell that is not in occupied.
// Cells are drawn by rejection sampling. If the sampler keeps missing
// (a nearly full board) it falls back to enumerating the free cells, so the
// call always terminates. Returns ErrBoardFull when no free cell exists.
func (g Grid) RandomFreeCell(rng *rand.Rand, occupied map[Cell]struct{}) (Cell, error) {
	taken := 0
	for c := range occupied {
		if g.Contains(c) {
			taken++
		}
	}
	if g.Area() <= 0 || taken >= g.Area() {
		return Cell{}, ErrBoardFull
	}

	for range 4 * g.Area() {
		c := Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if _, ok := occupied[c]; !ok {
			return c, nil
		}
	}

	free := make([]Cell, 0, g.Area()-taken)
	for y := range g.Height {
		for x := range g.Width {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free[rng.Intn(len(free))], nil
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
