package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type fakeSound struct {
	eat, over int
}

func (f *fakeSound) PlayEat()      { f.eat++ }
func (f *fakeSound) PlayGameOver() { f.over++ }

func newTestModel(t *testing.T, opts ...Option) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Width, cfg.Grid.Height = 10, 10
	cfg.Rules.AutoReset = false

	game, err := snake.New(cfg, snake.WithSeed(1))
	if err != nil {
		t.Fatalf("snake.New() failed: %v", err)
	}
	return NewModel(game, core.DefaultConfig(), opts...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTickFeedsElapsedTime(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatal("the first frame has no elapsed time and should not move")
	}

	m, _ = update(t, m, TickMsg(t0.Add(300*time.Millisecond)))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 3}) {
		t.Fatal("snake moved before the move interval")
	}

	m, cmd := update(t, m, TickMsg(t0.Add(500*time.Millisecond)))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3,4)", m.Game().Snake().Head())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestKeySteersSnake(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, TickMsg(t0.Add(500*time.Millisecond)))

	if m.Game().Snake().Head() != (core.Cell{X: 4, Y: 3}) {
		t.Errorf("head = %v, expected (4,3)", m.Game().Snake().Head())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runes("p"))
	if !m.Paused() {
		t.Fatal("p should pause")
	}

	m, _ = update(t, m, TickMsg(t0.Add(900*time.Millisecond)))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 3}) {
		t.Error("snake moved while paused")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show the banner")
	}

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg(t0.Add(1300*time.Millisecond)))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 3}) {
		t.Error("time spent paused should not count towards the next move")
	}
	m, _ = update(t, m, TickMsg(t0.Add(1400*time.Millisecond)))
	if m.Game().Snake().Head() != (core.Cell{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3,4) after resuming", m.Game().Snake().Head())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSoundCues(t *testing.T) {
	sound := &fakeSound{}
	m := newTestModel(t, WithSound(sound))
	m.Game().PlaceFood(core.Cell{X: 3, Y: 4})
	t0 := time.Unix(1000, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(500*time.Millisecond)))
	if sound.eat != 1 {
		t.Errorf("eat cues = %d, expected 1", sound.eat)
	}

	// Six more moves reach y=10 and hit the top wall.
	for i := 2; i <= 7; i++ {
		m, _ = update(t, m, TickMsg(t0.Add(time.Duration(i)*500*time.Millisecond)))
	}
	if sound.over != 1 {
		t.Errorf("game over cues = %d, expected 1", sound.over)
	}
}

func TestBackToMenuOnlyWhenEnabled(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("b"))
	if m.BackToMenu() {
		t.Error("back should be ignored without WithBackToMenu")
	}

	m = newTestModel(t, WithBackToMenu(), WithLogger(log.New(io.Discard)))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc should return to the menu")
	}
}

func TestViewIncludesBoardAndHelp(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	view := m.View()
	if !strings.Contains(view, "Length: 2") {
		t.Error("view should contain the HUD")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
}
