package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagVariant    string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in the terminal",
	Long: `Start a snake session in the terminal.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Space           - Pause
  R                 - Restart the round
  Q/Ctrl+C          - Quit

Difficulty presets set the movement interval:
  easy   - 500ms per cell
  normal - 250ms per cell
  hard   - 150ms per cell

Examples:
  snake play
  snake play --variant instant --difficulty normal
  snake play --sound --volume 0.3
  snake play --config ./small-board.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
	playCmd.Flags().StringVar(&flagVariant, "variant", snake.VariantClassic, "Rule variant (see 'snake list')")
}

// addPlayFlags registers the host flags shared by play and menu.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues for eating and crashing")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is busy with the board)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRules(flagVariant, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog, err := hostLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := runtimeConfig()
	game, err := snake.New(cfg,
		snake.WithSeed(rt.Seed),
		snake.WithLogger(logger.With("variant", flagVariant)),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := []tui.Option{tui.WithFPS(flagFPS), tui.WithLogger(logger)}
	if sound := openSound(logger); sound != nil {
		defer sound.Close()
		opts = append(opts, tui.WithSound(sound))
	}

	if err := tui.Run(game, rt, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	snap := game.Snapshot()
	logger.Info("session finished", "length", snap.Length, "resets", snap.Resets, "ticks", snap.Tick)
}

// hostLogger logs to --log-file, or nowhere while the board owns the terminal.
func hostLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard, "snake")
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "snake")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// openSound initializes audio when --sound is set. Returns nil when sound is
// off or no audio device is available.
func openSound(logger *log.Logger) *audio.SoundManager {
	if !flagSound {
		return nil
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return sm
}
