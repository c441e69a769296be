package config

import (
	"errors"
	"fmt"
	"time"
)

// DifficultyPreset represents a named movement speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownPreset is returned for preset names outside easy, normal and hard.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// MoveIntervalForPreset returns the movement interval for a difficulty preset.
func MoveIntervalForPreset(preset DifficultyPreset) (time.Duration, bool) {
	switch preset {
	case DifficultyEasy:
		return 500 * time.Millisecond, true
	case DifficultyNormal:
		return 250 * time.Millisecond, true
	case DifficultyHard:
		return 150 * time.Millisecond, true
	default:
		return 0, false
	}
}

// ApplyPreset sets the movement interval from a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	interval, ok := MoveIntervalForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: %q (expected easy, normal or hard)", ErrUnknownPreset, preset)
	}
	cfg.Timing.MoveInterval = Duration(interval)
	return nil
}
