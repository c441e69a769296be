// Package config provides YAML-based rule configuration loading and
// difficulty presets for the snake simulation.
package config

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all tunable rules of a snake session.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines where the snake spawns after every reset.
type SnakeConfig struct {
	StartX         int    `yaml:"start_x"`
	StartY         int    `yaml:"start_y"`
	StartDirection string `yaml:"start_direction"` // left, up, right, down
}

// TimingConfig defines the two independent simulation cadences.
type TimingConfig struct {
	MoveInterval Duration `yaml:"move_interval"`
	FoodInterval Duration `yaml:"food_interval"`
}

// RulesConfig defines rule switches.
type RulesConfig struct {
	FoodSpawn FoodSpawnMode `yaml:"food_spawn"`
	AutoReset bool          `yaml:"auto_reset"` // false waits for a restart action
}

// FoodSpawnMode selects when missing food is replaced.
type FoodSpawnMode string

const (
	// FoodSpawnTimer spawns food only when the food timer fires.
	FoodSpawnTimer FoodSpawnMode = "timer"
	// FoodSpawnImmediate spawns food on the first tick it is missing.
	FoodSpawnImmediate FoodSpawnMode = "immediate"
)

// Duration is a time.Duration that reads and writes YAML strings like "250ms".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration must be a string like \"500ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a Go duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GridSize returns the board described by the config.
func (c Config) GridSize() core.Grid {
	return core.NewGrid(c.Grid.Width, c.Grid.Height)
}

// StartCell returns the head position of a freshly spawned snake.
func (c Config) StartCell() core.Cell {
	return core.Cell{X: c.Snake.StartX, Y: c.Snake.StartY}
}

// StartDirection returns the facing of a freshly spawned snake.
// Falls back to up for names that fail validation.
func (c Config) StartDirection() core.Direction {
	if d, ok := core.ParseDirection(c.Snake.StartDirection); ok {
		return d
	}
	return core.DirUp
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 || c.Grid.Width*c.Grid.Height < 2 {
		return fmt.Errorf("%w: grid %dx%d cannot hold a snake of length 2", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}

	dir, ok := core.ParseDirection(c.Snake.StartDirection)
	if !ok {
		return fmt.Errorf("%w: unknown start_direction %q", ErrInvalidConfig, c.Snake.StartDirection)
	}

	grid := c.GridSize()
	head := c.StartCell()
	tail := head.Step(dir.Opposite())
	if !grid.Contains(head) || !grid.Contains(tail) {
		return fmt.Errorf("%w: start position %v facing %s leaves the grid", ErrInvalidConfig, head, dir)
	}
	// The first move must stay on the board, otherwise every session dies on tick one.
	if !grid.Contains(head.Step(dir)) {
		return fmt.Errorf("%w: start position %v facing %s hits the wall on the first move", ErrInvalidConfig, head, dir)
	}

	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("%w: move_interval must be positive", ErrInvalidConfig)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("%w: food_interval must be positive", ErrInvalidConfig)
	}

	switch c.Rules.FoodSpawn {
	case FoodSpawnTimer, FoodSpawnImmediate:
	default:
		return fmt.Errorf("%w: unknown food_spawn %q", ErrInvalidConfig, c.Rules.FoodSpawn)
	}

	return nil
}
