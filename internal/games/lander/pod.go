package lander

import "github.com/vovakirdan/xtarda-rescue/internal/core"

// DropPod releases the pod from under the mothership.
// Ignored unless playing with the pod parked.
func (w *World) DropPod() {
	if w.Status != StatusPlaying || w.Pod.Status != PodInactive {
		return
	}
	ms := &w.Mothership
	w.Pod = Pod{
		X:      ms.X + (ms.Width-w.cfg.Pod.Size)/2,
		Y:      ms.Y + ms.Height,
		Size:   w.cfg.Pod.Size,
		Status: PodDropping,
	}
	w.emit(SoundDropPod)
}

// LaunchPod lifts off from the pad once the man is aboard.
func (w *World) LaunchPod() {
	if w.Status != StatusPlaying || w.Pod.Status != PodReadyForTakeOff {
		return
	}
	if w.Man.Status != ManInactive {
		return
	}
	w.Pod.Status = PodAscending
	w.emit(SoundTakeOff)
}

// stepPod advances the pod state machine by one tick.
func (w *World) stepPod() {
	switch w.Pod.Status {
	case PodDropping:
		w.steerPod()
		if w.checkLanding() {
			return
		}
		if w.resolveCollision() {
			return
		}
		w.Pod.Y += w.cfg.Pod.DropStep

	case PodAscending:
		w.steerPod()
		if w.checkDocking(true) {
			return
		}
		if w.resolveCollision() {
			return
		}
		w.Pod.Y -= w.cfg.Pod.AscendStep

	case PodAutoDock:
		ms := &w.Mothership
		target := ms.X + (ms.Width-w.Pod.Size)/2
		w.Pod.X = approach(w.Pod.X, target, w.cfg.Pod.AutoDockStep)
		w.Pod.Y = max(w.Pod.Y-w.cfg.Pod.AscendStep, ms.Y)
		w.checkDocking(false)

	case PodExploding:
		w.Pod.FreshExplosion = false
		w.Pod.ExplosionTimer++
		if w.Pod.ExplosionTimer >= w.cfg.Pod.ExplosionTicks {
			w.Pod.Status = PodInactive
			w.Pod.ExplosionTimer = 0
		}
	}
}

// checkLanding handles the pod reaching pad level.
// Touching down outside the pad destroys the pod.
func (w *World) checkLanding() bool {
	level := w.LandingLevel()
	if w.Pod.Y < level {
		return false
	}
	w.Pod.Y = level

	padLeft, padRight := w.PadSpan()
	if !core.SpansOverlap(w.Pod.X, w.Pod.X+w.Pod.Size, padLeft, padRight) {
		w.explode()
		return true
	}

	w.Pod.Status = PodReadyForTakeOff
	w.Man.Status = ManEnteringPod
	w.emit(SoundLanded)
	return true
}

// checkDocking handles the pod reaching mothership altitude and reports
// whether it did. A misaligned pod switches to auto-dock.
func (w *World) checkDocking(precision bool) bool {
	ms := &w.Mothership
	if w.Pod.Y > ms.Y+w.cfg.Pod.DockTolerance {
		return false
	}

	aligned := ms.X <= w.Pod.X && w.Pod.X+w.Pod.Size <= ms.X+ms.Width
	if !aligned {
		w.Pod.Status = PodAutoDock
		return true
	}

	w.dock(precision)
	return true
}

// dock delivers the man to the mothership.
func (w *World) dock(precision bool) {
	w.Pod.Status = PodInactive
	w.MenToRescue = max(w.MenToRescue-1, 0)
	w.Rescued++
	w.emit(SoundDocked)

	if precision {
		w.PrecisionDocks++
		w.PodsRemaining++
		w.emit(SoundBonus)
	}

	if w.MenToRescue == 0 {
		w.SetLevel(w.Level + 1)
	}
}

// explode destroys the active pod and charges the reserve.
func (w *World) explode() {
	if !w.Pod.Status.Active() {
		return
	}
	w.Pod.Status = PodExploding
	w.Pod.ExplosionTimer = 0
	w.Pod.FreshExplosion = true
	w.emit(SoundExplosion)

	if !w.cfg.Debug.NoPenalty {
		w.PodsRemaining = max(w.PodsRemaining-1, 0)
	}
	if w.PodsRemaining == 0 && w.Status == StatusPlaying {
		w.Status = StatusGameOver
	}
}
