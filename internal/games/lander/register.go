package lander

import (
	"github.com/vovakirdan/xtarda-rescue/internal/config"
	"github.com/vovakirdan/xtarda-rescue/internal/registry"
)

// Factory returns a registry factory building games from cfg.
func Factory(cfg config.LanderConfig) registry.Factory {
	return func() registry.Game {
		return NewWithConfig(cfg)
	}
}

// Register the built-in configuration; the CLI replaces it once the
// user's config is loaded.
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
