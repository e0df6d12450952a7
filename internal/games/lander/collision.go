package lander

import (
	"slices"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
)

// Hit classifies the pod's contact with the asteroid field.
type Hit int

const (
	HitNone     Hit = iota // No blob within reach
	HitNearMiss            // Inside a blob's scrape ring but outside its core
	HitFatal               // Pod centre inside a blob's core
)

func (h Hit) String() string {
	switch h {
	case HitNearMiss:
		return "near_miss"
	case HitFatal:
		return "fatal"
	default:
		return "none"
	}
}

// CheckCollision tests the pod centre against every blob.
// It returns the worst hit and the index of the asteroid responsible
// (-1 for HitNone). The first asteroid with a fatal blob wins.
func CheckCollision(w *World) (Hit, int) {
	cx, cy := w.Pod.CenterX(), w.Pod.CenterY()
	ring := w.Pod.Size / 2

	hit, idx := HitNone, -1
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		for b := range a.Blobs {
			bx, by := a.BlobCenter(b)
			d := core.Distance(cx, cy, bx, by)
			r := a.Blobs[b].Radius
			switch {
			case d < r:
				return HitFatal, i
			case d < r+ring && hit == HitNone:
				hit, idx = HitNearMiss, i
			}
		}
	}
	return hit, idx
}

// resolveCollision applies the outcome of CheckCollision.
// It returns true when the pod was destroyed.
func (w *World) resolveCollision() bool {
	hit, idx := CheckCollision(w)
	switch hit {
	case HitFatal:
		w.Asteroids = slices.Delete(w.Asteroids, idx, idx+1)
		w.explode()
		return true
	case HitNearMiss:
		if w.Pod.ScrapeTimer == 0 {
			w.emit(SoundScrape)
			w.Pod.ScrapeTimer = w.cfg.Pod.ScrapeTicks
		}
	}
	return false
}
