package lander

import (
	"github.com/vovakirdan/xtarda-rescue/internal/config"
)

// LevelPlan is the generated content of one level.
type LevelPlan struct {
	Asteroids        []Asteroid
	MenToRescue      int
	ReserveDelta     int // Pods granted on entering the level
	AsteroidSpeedMax float64
}

// GenerateLevel builds the asteroid field and quotas for a level.
// It consumes the world RNG but does not modify any other state.
func (w *World) GenerateLevel(level int) LevelPlan {
	count := w.difficulty.AsteroidCount(level)
	maxSpeed := w.difficulty.MaxSpeed(level)
	ast := w.cfg.Asteroids

	top := ast.BandTop * w.cfg.World.Height
	bottom := ast.BandBottom * w.cfg.World.Height
	rowGap := 0.0
	if count > 0 {
		rowGap = (bottom - top) / float64(count)
	}

	asteroids := make([]Asteroid, 0, count)
	for n := range count {
		a := Asteroid{
			X:     w.uniform(ast.SpawnMargin, w.cfg.World.Width-ast.SpawnMargin),
			Y:     top + float64(n)*rowGap,
			Speed: w.rollSpeed(maxSpeed),
		}
		for i := range a.Blobs {
			a.Blobs[i] = w.rollBlob(ast.Blobs[i%len(ast.Blobs)])
		}
		asteroids = append(asteroids, a)
	}

	men := level + 1
	return LevelPlan{
		Asteroids:        asteroids,
		MenToRescue:      men,
		ReserveDelta:     w.difficulty.ReserveIncrement(men),
		AsteroidSpeedMax: maxSpeed,
	}
}

// rollSpeed draws a speed in [-max, max] outside the dead band.
func (w *World) rollSpeed(maxSpeed float64) float64 {
	return ClampSpeed(w.uniform(-maxSpeed, maxSpeed), w.cfg.Asteroids.MinSpeed)
}

// ClampSpeed pushes a speed inside (-minSpeed, minSpeed) out to
// ±minSpeed, keeping its sign. Zero becomes +minSpeed.
func ClampSpeed(s, minSpeed float64) float64 {
	switch {
	case s >= minSpeed || s <= -minSpeed:
		return s
	case s < 0:
		return -minSpeed
	default:
		return minSpeed
	}
}

func (w *World) rollBlob(r config.BlobRange) Blob {
	return Blob{
		OffsetX: w.uniform(r.MinOffsetX, r.MaxOffsetX),
		OffsetY: w.uniform(r.MinOffsetY, r.MaxOffsetY),
		Radius:  w.uniform(r.MinRadius, r.MaxRadius),
	}
}

// uniform returns a float in [lo, hi).
func (w *World) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

// SetLevel enters level n: carries the reserve over, grants new pods,
// replaces the asteroid field and parks the pod and man.
// Entering any level after the first shows the new-level screen.
func (w *World) SetLevel(n int) {
	if n < 1 {
		n = 1
	}
	plan := w.GenerateLevel(n)

	w.Level = n
	w.MenToRescue = plan.MenToRescue
	w.PodsCarriedOver = w.PodsRemaining
	w.PodsRemaining += plan.ReserveDelta
	w.Asteroids = plan.Asteroids

	w.Pod = Pod{Size: w.cfg.Pod.Size, Status: PodInactive}
	w.resetMan()
	w.generateStars()

	if n > 1 {
		w.Status = StatusNewLevel
	}
}

// generateStars fills the star field once per world.
func (w *World) generateStars() {
	if len(w.Stars) > 0 {
		return
	}
	count := max(w.cfg.Stars.Count, 0)
	w.Stars = make([]Star, 0, count)
	for range count {
		w.Stars = append(w.Stars, Star{
			X:      w.uniform(0, w.cfg.World.Width),
			Y:      w.uniform(0, w.GroundY()),
			Bright: w.rng.Intn(4) == 0,
		})
	}
}

func (w *World) resetMan() {
	x, y := w.manSpawn()
	w.Man = Man{X: x, Y: y, Status: ManInactive}
}
