package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "classic"
	VariantInstant = "instant"
	VariantPatient = "patient"
)

func init() {
	registry.Register(registry.Variant{
		ID:          VariantClassic,
		Title:       "Classic",
		Description: "Food appears on the spawn timer; a crash restarts the round at once.",
		Apply: func(cfg *config.Config) {
			cfg.Rules.FoodSpawn = config.FoodSpawnTimer
			cfg.Rules.AutoReset = true
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantInstant,
		Title:       "Instant food",
		Description: "New food appears as soon as the last one is eaten.",
		Apply: func(cfg *config.Config) {
			cfg.Rules.FoodSpawn = config.FoodSpawnImmediate
			cfg.Rules.AutoReset = true
		},
	})
	registry.Register(registry.Variant{
		ID:          VariantPatient,
		Title:       "Patient",
		Description: "A crash freezes the board until restart is pressed.",
		Apply: func(cfg *config.Config) {
			cfg.Rules.AutoReset = false
		},
	})
}
