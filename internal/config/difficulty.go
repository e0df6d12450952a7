package config

import "math"

// DifficultyManager turns the configuration into per-level numbers.
type DifficultyManager struct {
	diff DifficultyConfig
	ast  AsteroidConfig
}

// NewDifficultyManager creates a difficulty manager for the given config.
func NewDifficultyManager(cfg LanderConfig) *DifficultyManager {
	return &DifficultyManager{
		diff: cfg.Difficulty,
		ast:  cfg.Asteroids,
	}
}

// IsProgressive returns whether asteroid speed grows with the level.
func (d *DifficultyManager) IsProgressive() bool {
	return d.diff.Progression
}

// AsteroidCount returns how many asteroids a level starts with.
func (d *DifficultyManager) AsteroidCount(level int) int {
	n := d.ast.BaseCount + d.ast.PerLevel*level
	if n < 0 {
		return 0
	}
	return n
}

// MaxSpeed returns the largest asteroid speed magnitude for a level.
// It never drops below the dead band so that a valid speed always exists.
func (d *DifficultyManager) MaxSpeed(level int) float64 {
	speed := d.ast.BaseMaxSpeed
	if d.diff.Progression {
		speed += d.ast.SpeedPerLevel * float64(level)
	}
	speed *= d.diff.SpeedScale
	return math.Max(speed, d.ast.MinSpeed)
}

// ReserveIncrement returns how many pods are granted for a level that
// asks for men rescues.
func (d *DifficultyManager) ReserveIncrement(men int) int {
	inc := math.Floor(d.diff.ReserveBase + d.diff.ReservePerMan*float64(men))
	if inc < 0 {
		return 0
	}
	return int(inc)
}
