package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(core.Cell{X: 3, Y: 3}, core.DirUp)

	expected := []core.Cell{{X: 3, Y: 3}, {X: 3, Y: 2}}
	if !slices.Equal(s.Cells(), expected) {
		t.Errorf("Cells() = %v, expected %v", s.Cells(), expected)
	}
	if s.Direction() != core.DirUp {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}
}

func TestNewSnakeFromCellsPanicsOnShortBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewSnakeFromCells with one segment should panic")
		}
	}()
	NewSnakeFromCells([]core.Cell{{X: 1, Y: 1}}, core.DirUp)
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	dirs := []core.Direction{core.DirLeft, core.DirUp, core.DirRight, core.DirDown}

	for _, d := range dirs {
		t.Run(d.String(), func(t *testing.T) {
			s := NewSnake(core.Cell{X: 5, Y: 5}, d)
			if s.SetDirection(d.Opposite()) {
				t.Errorf("SetDirection(%v) accepted while facing %v", d.Opposite(), d)
			}
			if s.Direction() != d {
				t.Errorf("Direction() = %v, expected unchanged %v", s.Direction(), d)
			}
		})
	}
}

func TestSetDirectionAcceptsTurnsAndSameDirection(t *testing.T) {
	s := NewSnake(core.Cell{X: 5, Y: 5}, core.DirUp)

	if !s.SetDirection(core.DirUp) {
		t.Error("SetDirection(up) while facing up should be accepted")
	}
	if !s.SetDirection(core.DirLeft) {
		t.Error("SetDirection(left) while facing up should be accepted")
	}
	if s.Direction() != core.DirLeft {
		t.Errorf("Direction() = %v, expected left", s.Direction())
	}
}

func TestSetDirectionBlocksTwoStepReversal(t *testing.T) {
	s := NewSnake(core.Cell{X: 5, Y: 5}, core.DirUp)

	// Left then Down between two moves would fold the head into the neck.
	if !s.SetDirection(core.DirLeft) {
		t.Fatal("SetDirection(left) should be accepted")
	}
	if s.SetDirection(core.DirDown) {
		t.Error("SetDirection(down) should be rejected before the snake has moved left")
	}

	s.Advance()
	if !s.SetDirection(core.DirDown) {
		t.Error("SetDirection(down) should be accepted after moving left")
	}
	if s.SetDirection(core.DirRight) {
		t.Error("SetDirection(right) should be rejected after moving left")
	}
}

func TestAdvanceShiftsBody(t *testing.T) {
	s := NewSnake(core.Cell{X: 3, Y: 3}, core.DirUp)

	out := s.Advance()

	expected := []core.Cell{{X: 3, Y: 4}, {X: 3, Y: 3}}
	if !slices.Equal(s.Cells(), expected) {
		t.Errorf("Cells() = %v, expected %v", s.Cells(), expected)
	}
	if out.Head != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("Head = %v, expected (3,4)", out.Head)
	}
	if out.LastTail != (core.Cell{X: 3, Y: 2}) {
		t.Errorf("LastTail = %v, expected (3,2)", out.LastTail)
	}
	if !slices.Equal(out.PreMove, []core.Cell{{X: 3, Y: 3}, {X: 3, Y: 2}}) {
		t.Errorf("PreMove = %v, expected [(3,3) (3,2)]", out.PreMove)
	}
}

func TestAdvanceFollowsTheLeader(t *testing.T) {
	s := NewSnakeFromCells([]core.Cell{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 2}}, core.DirUp)
	turns := []core.Direction{core.DirUp, core.DirRight, core.DirRight, core.DirDown, core.DirRight, core.DirUp}

	prev := s.Cells()
	for step, d := range turns {
		s.SetDirection(d)
		s.Advance()
		cur := s.Cells()

		if len(cur) != len(prev) {
			t.Fatalf("step %d: length changed from %d to %d", step, len(prev), len(cur))
		}
		for i := 1; i < len(cur); i++ {
			if cur[i] != prev[i-1] {
				t.Errorf("step %d: segment %d = %v, expected %v", step, i, cur[i], prev[i-1])
			}
		}
		prev = cur
	}
}

func TestGrowAppendsAtPreMoveTail(t *testing.T) {
	s := NewSnake(core.Cell{X: 3, Y: 3}, core.DirUp)

	out := s.Advance()
	s.Grow(out.LastTail)

	expected := []core.Cell{{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 2}}
	if !slices.Equal(s.Cells(), expected) {
		t.Errorf("Cells() = %v, expected %v", s.Cells(), expected)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestContains(t *testing.T) {
	s := NewSnakeFromCells([]core.Cell{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}, core.DirUp)

	tests := []struct {
		cell          core.Cell
		excludingHead bool
		expected      bool
	}{
		{core.Cell{X: 1, Y: 1}, false, true},
		{core.Cell{X: 1, Y: 1}, true, false},
		{core.Cell{X: 0, Y: 0}, true, true},
		{core.Cell{X: 2, Y: 2}, false, false},
	}

	for _, tc := range tests {
		if got := s.Contains(tc.cell, tc.excludingHead); got != tc.expected {
			t.Errorf("Contains(%v, %v) = %v, expected %v", tc.cell, tc.excludingHead, got, tc.expected)
		}
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	s := NewSnake(core.Cell{X: 3, Y: 3}, core.DirUp)
	cells := s.Cells()
	cells[0] = core.Cell{X: 9, Y: 9}

	if s.Head() != (core.Cell{X: 3, Y: 3}) {
		t.Error("mutating Cells() result should not affect the snake")
	}
}
