// Package registry provides a global registry of rule variants.
// Variants register themselves in init() functions, allowing the CLI and the
// SSH host to offer them without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Variant is a named rule set layered over a loaded config.
type Variant struct {
	ID          string
	Title       string
	Description string
	// Apply adjusts the config in place. Nil leaves the config unchanged.
	Apply func(cfg *config.Config)
}

// VariantInfo contains display metadata about a registered variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if the ID is empty or already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("registry: variant without an ID")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		result = append(result, VariantInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant registered under id.
func Get(id string) (Variant, bool) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	return v, ok
}

// Build applies the variant to a copy of base and validates the result.
// Returns an error if the variant ID is not registered or the result is invalid.
func Build(id string, base config.Config) (config.Config, error) {
	v, ok := Get(id)
	if !ok {
		return config.Config{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	cfg := base
	if v.Apply != nil {
		v.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("registry: variant %q: %w", id, err)
	}
	return cfg, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
