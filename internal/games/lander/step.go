package lander

import "github.com/vovakirdan/xtarda-rescue/internal/core"

// Apply handles one intent against the status machine.
// Intents outside their guard are ignored. It returns true for Quit.
func (w *World) Apply(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return true

	case core.ActionSteerLeftStart:
		w.steerLeft = true
	case core.ActionSteerLeftStop:
		w.steerLeft = false
	case core.ActionSteerRightStart:
		w.steerRight = true
	case core.ActionSteerRightStop:
		w.steerRight = false

	case core.ActionDropPod:
		w.DropPod()
	case core.ActionLaunchPod:
		w.LaunchPod()

	case core.ActionContinue:
		if w.Status == StatusSplash || w.Status == StatusNewLevel {
			w.Status = StatusPlaying
		}
	case core.ActionPause:
		if w.Status == StatusPlaying {
			w.Status = StatusPaused
		}
	case core.ActionResume:
		if w.Status == StatusPaused {
			w.Status = StatusPlaying
		}
	case core.ActionRestart:
		if w.Status == StatusGameOver {
			w.Restart()
		}
	}
	return false
}

// Tick advances the simulation by one step. Outside StatusPlaying it does nothing.
func (w *World) Tick() {
	if w.Status != StatusPlaying {
		return
	}
	w.moveMothership()
	w.moveAsteroids()
	w.stepPod()
	w.moveMan()
	w.tickTimers()
}

// Steering reports the held steering state.
func (w *World) Steering() (left, right bool) {
	return w.steerLeft, w.steerRight
}
