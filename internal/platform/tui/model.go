package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// maxFrameTime caps the elapsed time fed to one tick, so a suspended
// terminal does not fast-forward the food timer on resume.
const maxFrameTime = time.Second

// SoundPlayer receives cues for audible events.
type SoundPlayer interface {
	PlayEat()
	PlayGameOver()
}

// Option configures a Model.
type Option func(*Model)

// WithSound plays cues through p.
func WithSound(p SoundPlayer) Option {
	return func(m *Model) { m.sound = p }
}

// WithFPS sets the host frame rate.
func WithFPS(fps int) Option {
	return func(m *Model) { m.fps = fps }
}

// WithLogger sets the logger for host events.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets the back key leave the board; used by the SSH session.
func WithBackToMenu() Option {
	return func(m *Model) { m.allowBack = true }
}

// Model is the Bubble Tea model that hosts one snake session.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	input     core.InputFrame
	lastFrame time.Time
	fps       int
	sound     SoundPlayer
	logger    *log.Logger

	paused     bool
	quitting   bool
	allowBack  bool
	backToMenu bool
}

// NewModel creates a model for the game sized to the runtime config.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		fps:    cfg.TickRate,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The last row holds the help footer.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.allowBack && key.Matches(msg, m.keys.Back) {
		m.backToMenu = true
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.logger.Debug("pause toggled", "paused", m.paused)
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick feeds the real time since the previous frame to the simulation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastFrame.IsZero() {
		elapsed = min(now.Sub(m.lastFrame), maxFrameTime)
	}
	m.lastFrame = now

	if m.paused || m.backToMenu {
		m.input.Clear()
		return m, tickCmd(m.fps)
	}

	res := m.game.Tick(elapsed, m.input)
	m.input.Clear()
	m.playCues(res)

	return m, tickCmd(m.fps)
}

func (m Model) playCues(res snake.TickResult) {
	if m.sound == nil {
		return
	}
	if res.Has(snake.EventAte) {
		m.sound.PlayEat()
	}
	if res.Has(snake.EventGameOver) {
		m.sound.PlayGameOver()
	}
}

// View renders the board, the pause banner and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	board := RenderScreen(m.screen)
	if m.paused {
		board += "\n" + pausedStyle.Render("PAUSED")
	}
	return board + "\n" + m.help.View(m.keys)
}

// Game returns the hosted session.
func (m Model) Game() *snake.Game {
	return m.game
}

// Paused reports whether the host has frozen the simulation.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the variant menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for the game and blocks until it exits.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts ...Option) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts...),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
