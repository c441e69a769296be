package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// loadRules loads the config file, applies the variant and then the preset.
func loadRules(variant, difficulty string) (config.Config, error) {
	base, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := registry.Build(variant, base)
	if err != nil {
		return config.Config{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger creates a logger at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// resolveSeed returns --seed, or the current time when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// runtimeConfig sizes the host to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = resolveSeed()
	return cfg
}
