package lander

import (
	"math/rand"

	"github.com/vovakirdan/xtarda-rescue/internal/config"
)

// World owns every entity and counter of one game.
// It is mutated only by the step functions in this package.
type World struct {
	cfg        config.LanderConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	Status     GameStatus
	Mothership Mothership
	Pod        Pod
	Man        Man
	Asteroids  []Asteroid
	Stars      []Star
	Progress

	// Held steering, set by Start intents and cleared by Stop intents
	steerLeft  bool
	steerRight bool

	sounds []Sound
}

// NewWorld creates a world at the splash screen of level 1.
func NewWorld(cfg config.LanderConfig, seed int64) *World {
	w := &World{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
		rng:        rand.New(rand.NewSource(seed)),
		sounds:     make([]Sound, 0, 8),
	}
	w.Restart()
	return w
}

// Width returns the world width in world units.
func (w *World) Width() float64 { return w.cfg.World.Width }

// Height returns the world height in world units.
func (w *World) Height() float64 { return w.cfg.World.Height }

// GroundY returns the y of the ground surface.
func (w *World) GroundY() float64 {
	return w.cfg.World.Height - w.cfg.World.GroundHeight
}

// PadSpan returns the horizontal extent of the landing pad.
func (w *World) PadSpan() (float64, float64) {
	left := (w.cfg.World.Width - w.cfg.Pad.Width) / 2
	return left, left + w.cfg.Pad.Width
}

// LandingLevel returns the pod y at which it rests on the pad.
func (w *World) LandingLevel() float64 {
	return w.GroundY() - w.cfg.Pad.Height - w.cfg.Pod.Size
}

// manSpawn returns the man's starting position.
func (w *World) manSpawn() (float64, float64) {
	return w.cfg.World.Width * w.cfg.Man.SpawnFraction, w.GroundY() - w.cfg.Man.Height
}

// Restart resets the whole run and returns to the splash screen.
// Stars survive a restart.
func (w *World) Restart() {
	w.Status = StatusSplash
	w.Progress = Progress{}
	w.Mothership = Mothership{
		X:      w.cfg.Mothership.StartX,
		Y:      w.cfg.Mothership.Y,
		Dir:    1,
		Speed:  w.cfg.Mothership.Speed,
		Width:  w.cfg.Mothership.Width,
		Height: w.cfg.Mothership.Height,
	}
	w.steerLeft, w.steerRight = false, false
	w.sounds = w.sounds[:0]
	w.SetLevel(1)
}

// Sounds returns the cues emitted during the last tick.
func (w *World) Sounds() []Sound {
	return w.sounds
}

// DrainSounds returns and clears the queued cues.
func (w *World) DrainSounds() []Sound {
	out := make([]Sound, len(w.sounds))
	copy(out, w.sounds)
	w.sounds = w.sounds[:0]
	return out
}
