package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.snake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Rules is the base config every session's variant is applied to.
	Rules config.Config

	// FPS is the frame rate of each session's tick loop.
	FPS int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Rules:       config.Default(),
		FPS:         60,
	}
}

// SSHServer serves one independent snake session per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger writes timestamped lines to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".snake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.FPS,
		Seed:     time.Now().UnixNano(),
	}
	logger := s.logger.With("user", sshSession.User())

	return NewSessionModel(s.config.Rules, rt, logger), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages one connection's flow: menu -> board -> menu.
type SessionModel struct {
	rules     config.Config
	runtime   core.RuntimeConfig
	logger    *log.Logger
	menu      MenuModel
	gameModel *Model
	opts      []Option
	rounds    int
	errMsg    string
	quitting  bool
}

// NewSessionModel creates a session that starts on the variant menu.
// opts are applied to every board the session opens.
func NewSessionModel(rules config.Config, rt core.RuntimeConfig, logger *log.Logger, opts ...Option) SessionModel {
	return SessionModel{
		rules:   rules,
		runtime: rt,
		logger:  logger,
		menu:    NewMenuModel(rt),
		opts:    opts,
	}
}

// RunSession runs the menu -> board loop in the local terminal.
func RunSession(rules config.Config, rt core.RuntimeConfig, logger *log.Logger, opts ...Option) error {
	p := tea.NewProgram(NewSessionModel(rules, rt, logger, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu returns tea.Quit on select; the session keeps running instead.
	game, err := m.newGame(selected.ID)
	if err != nil {
		m.logger.Error("cannot start session", "variant", selected.ID, "error", err)
		m.errMsg = err.Error()
		m.menu = NewMenuModel(m.runtime)
		return m, nil
	}

	m.logger.Info("round started", "variant", selected.ID)
	opts := append([]Option{WithBackToMenu(), WithLogger(m.logger)}, m.opts...)
	gm := NewModel(game, m.runtime, opts...)
	m.gameModel = &gm
	m.rounds++
	m.errMsg = ""
	return m, gm.Init()
}

func (m SessionModel) newGame(variantID string) (*snake.Game, error) {
	cfg, err := registry.Build(variantID, m.rules)
	if err != nil {
		return nil, err
	}
	return snake.New(cfg,
		snake.WithSeed(m.runtime.Seed+int64(m.rounds)),
		snake.WithLogger(m.logger.With("variant", variantID)),
	)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		snap := m.gameModel.Game().Snapshot()
		m.logger.Info("round left", "length", snap.Length, "resets", snap.Resets)
		m.gameModel = nil
		m.menu = NewMenuModel(m.runtime)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	if m.errMsg != "" {
		return m.menu.View() + "\n" + m.errMsg + "\n"
	}
	return m.menu.View()
}
