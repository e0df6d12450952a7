package lander

import "github.com/vovakirdan/xtarda-rescue/internal/core"

// moveMothership advances the mothership and reflects it at the margins.
func (w *World) moveMothership() {
	ms := &w.Mothership
	minX := w.cfg.Mothership.Margin
	maxX := w.cfg.World.Width - ms.Width - w.cfg.Mothership.Margin

	next := ms.X + ms.Dir*ms.Speed
	switch {
	case next < minX:
		next = minX
		ms.Dir = 1
	case next > maxX:
		next = maxX
		ms.Dir = -1
	}
	ms.X = next
}

// moveAsteroids drifts every asteroid and wraps those that left the
// world so that they re-enter fully outside the opposite edge.
func (w *World) moveAsteroids() {
	width := w.cfg.World.Width
	for i := range w.Asteroids {
		a := &w.Asteroids[i]
		a.X += a.Speed
		switch {
		case a.Speed > 0 && a.MinX() > width:
			a.X -= a.MaxX()
		case a.Speed < 0 && a.MaxX() < 0:
			a.X += width - a.MinX()
		}
	}
}

// steerPod applies the held steering intent.
func (w *World) steerPod() {
	if w.Pod.Status != PodDropping && w.Pod.Status != PodAscending {
		return
	}
	step := w.cfg.Pod.SteerStep
	if w.steerLeft {
		w.Pod.X -= step
	}
	if w.steerRight {
		w.Pod.X += step
	}
	w.Pod.X = core.ClampF(w.Pod.X, 0, w.cfg.World.Width-w.Pod.Size)
}

// moveMan walks the boarding man toward the pod hatch.
func (w *World) moveMan() {
	if w.Man.Status != ManEnteringPod {
		return
	}
	target := w.Pod.X + w.cfg.Man.BoardingOffset
	w.Man.X = approach(w.Man.X, target, w.cfg.Man.Step)
	if w.Man.X == target {
		w.resetMan()
		w.emit(SoundSeatbelt)
	}
}

// approach moves v toward target by at most step without overshooting.
func approach(v, target, step float64) float64 {
	switch {
	case v < target:
		return min(v+step, target)
	case v > target:
		return max(v-step, target)
	default:
		return v
	}
}

func (w *World) tickTimers() {
	if w.Pod.ScrapeTimer > 0 {
		w.Pod.ScrapeTimer--
	}
}
