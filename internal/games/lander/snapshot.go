package lander

import (
	"hash/fnv"
	"math"
	"slices"
)

// Snapshot is a read-only copy of the world for renderers.
// It shares no memory with the live world.
type Snapshot struct {
	Tick       uint64
	Status     GameStatus
	Mothership Mothership
	Pod        Pod
	Man        Man
	Asteroids  []Asteroid
	Stars      []Star
	Progress   Progress

	WorldW, WorldH float64
	GroundY        float64
	PadLeft        float64
	PadRight       float64
	PadHeight      float64
	ManHeight      float64
}

// Snapshot returns a deep copy of the current world.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	padLeft, padRight := w.PadSpan()
	return Snapshot{
		Tick:       g.ticks,
		Status:     w.Status,
		Mothership: w.Mothership,
		Pod:        w.Pod,
		Man:        w.Man,
		Asteroids:  slices.Clone(w.Asteroids),
		Stars:      slices.Clone(w.Stars),
		Progress:   w.Progress,

		WorldW:    w.Width(),
		WorldH:    w.Height(),
		GroundY:   w.GroundY(),
		PadLeft:   padLeft,
		PadRight:  padRight,
		PadHeight: w.cfg.Pad.Height,
		ManHeight: w.cfg.Man.Height,
	}
}

// Hash returns a digest of the dynamic state for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v float64) {
		bits := math.Float64bits(v)
		for i := range buf {
			buf[i] = byte(bits >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}

	put(float64(s.Tick))
	put(float64(s.Status))
	put(s.Mothership.X)
	put(s.Pod.X)
	put(s.Pod.Y)
	put(float64(s.Pod.Status))
	put(s.Man.X)
	put(float64(s.Progress.Level))
	put(float64(s.Progress.MenToRescue))
	put(float64(s.Progress.PodsRemaining))
	put(float64(s.Progress.Rescued))
	for _, a := range s.Asteroids {
		put(a.X)
		put(a.Y)
		put(a.Speed)
	}
	return h.Sum64()
}
