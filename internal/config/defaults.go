package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeConfig{
			StartX:         3,
			StartY:         3,
			StartDirection: "up",
		},
		Timing: TimingConfig{
			MoveInterval: Duration(500 * time.Millisecond),
			FoodInterval: Duration(10 * time.Second),
		},
		Rules: RulesConfig{
			FoodSpawn: FoodSpawnTimer,
			AutoReset: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
