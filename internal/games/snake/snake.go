package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered list of body segments, head at index 0, plus a facing.
type Snake struct {
	body      []core.Cell
	direction core.Direction // Facing used by the next Advance
	heading   core.Direction // Direction of the last completed Advance
}

// MoveOutcome describes one Advance.
type MoveOutcome struct {
	PreMove  []core.Cell // Segment positions before the move, head first
	LastTail core.Cell   // Tail position before the move; growth appends here
	Head     core.Cell   // Head position after the move
}

// NewSnake creates a length-2 snake with its head at head, facing dir.
// The second segment sits one step behind the head.
func NewSnake(head core.Cell, dir core.Direction) *Snake {
	return NewSnakeFromCells([]core.Cell{head, head.Step(dir.Opposite())}, dir)
}

// NewSnakeFromCells creates a snake from explicit segment positions, head first.
// Panics if fewer than two segments are given.
func NewSnakeFromCells(cells []core.Cell, dir core.Direction) *Snake {
	if len(cells) < 2 {
		panic("snake: a snake needs at least two segments")
	}
	return &Snake{
		body:      slices.Clone(cells),
		direction: dir,
		heading:   dir,
	}
}

// SetDirection changes the facing for the next move.
// A request for the reverse of the current facing, or of the direction the
// head last moved in, is ignored and reported as false. The second check
// stops two quick turns between moves from folding the head into the neck.
func (s *Snake) SetDirection(d core.Direction) bool {
	if !d.Valid() {
		return false
	}
	if d == s.direction.Opposite() || d == s.heading.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Direction returns the current facing.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Advance moves the snake one cell in its facing.
// Every segment takes the position its neighbour closer to the head held
// before the move. The move is unconditional; the caller decides whether the
// new head position is fatal. Panics on an empty snake.
func (s *Snake) Advance() MoveOutcome {
	if len(s.body) == 0 {
		panic("snake: advance on an empty snake")
	}

	pre := slices.Clone(s.body)
	newHead := pre[0].Step(s.direction)

	copy(s.body[1:], pre[:len(pre)-1])
	s.body[0] = newHead
	s.heading = s.direction

	return MoveOutcome{
		PreMove:  pre,
		LastTail: pre[len(pre)-1],
		Head:     newHead,
	}
}

// Grow appends a segment at the given cell, normally MoveOutcome.LastTail.
func (s *Snake) Grow(at core.Cell) {
	if len(s.body) == 0 {
		panic("snake: grow on an empty snake")
	}
	s.body = append(s.body, at)
}

// Contains reports whether a segment occupies the cell.
func (s *Snake) Contains(c core.Cell, excludingHead bool) bool {
	start := 0
	if excludingHead {
		start = 1
	}
	return slices.Contains(s.body[start:], c)
}

// Head returns the head position.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Tail returns the last segment position.
func (s *Snake) Tail() core.Cell {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the segment positions, head first.
func (s *Snake) Cells() []core.Cell {
	return slices.Clone(s.body)
}
