package lander

import (
	"slices"
	"testing"

	"github.com/vovakirdan/xtarda-rescue/internal/config"
)

func TestDropPodGuards(t *testing.T) {
	w := NewWorld(config.DefaultLanderConfig(), 1)

	w.DropPod()
	if w.Pod.Status != PodInactive {
		t.Fatal("pod should not drop on the splash screen")
	}

	w.Status = StatusPlaying
	w.DropPod()
	if w.Pod.Status != PodDropping {
		t.Fatalf("pod status = %v, expected dropping", w.Pod.Status)
	}

	ms := w.Mothership
	if w.Pod.Y != ms.Y+ms.Height {
		t.Errorf("pod y = %v, expected %v", w.Pod.Y, ms.Y+ms.Height)
	}
	if w.Pod.CenterX() != ms.X+ms.Width/2 {
		t.Errorf("pod should be centred under the mothership, centre %v vs %v", w.Pod.CenterX(), ms.X+ms.Width/2)
	}

	y := w.Pod.Y
	w.DropPod()
	if w.Pod.Y != y || len(w.Sounds()) != 1 {
		t.Error("second drop should be ignored")
	}
	if w.Sounds()[0] != SoundDropPod {
		t.Errorf("sound = %v, expected drop_pod", w.Sounds()[0])
	}
}

func TestFreshDropIsNotHitByTopRow(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	for seed := int64(1); seed <= 300; seed++ {
		w := NewWorld(cfg, seed)
		w.Status = StatusPlaying
		// Let the field drift so every part of a row passes under the ship
		for range int(seed % 120) {
			w.Tick()
		}

		w.DropPod()
		for tick := 1; tick <= 3; tick++ {
			w.Tick()
			if w.Pod.Status == PodExploding {
				t.Fatalf("seed %d: pod destroyed %d ticks after leaving the mothership", seed, tick)
			}
		}
	}
}

func TestLandingOnPad(t *testing.T) {
	w := newPlayingWorld(t)
	padLeft, _ := w.PadSpan()
	w.Pod = Pod{X: padLeft + 50, Y: w.LandingLevel() + 3, Size: 20, Status: PodDropping}

	w.stepPod()

	if w.Pod.Status != PodReadyForTakeOff {
		t.Fatalf("pod status = %v, expected ready_for_take_off", w.Pod.Status)
	}
	if w.Pod.Y != w.LandingLevel() {
		t.Errorf("pod y = %v, expected snap to %v", w.Pod.Y, w.LandingLevel())
	}
	if w.Man.Status != ManEnteringPod {
		t.Error("man should start walking to the pod")
	}
	if !slices.Equal(w.Sounds(), []Sound{SoundLanded}) {
		t.Errorf("sounds = %v, expected [landed]", w.Sounds())
	}
}

func TestLandingSpan(t *testing.T) {
	w := newPlayingWorld(t)
	padLeft, padRight := w.PadSpan()

	tests := []struct {
		name  string
		x     float64
		lands bool
	}{
		{"centre", (padLeft + padRight) / 2, true},
		{"overlaps left edge", padLeft - 19, true},
		{"overlaps right edge", padRight - 1, true},
		{"touches left edge", padLeft - 20, false},
		{"touches right edge", padRight, false},
		{"far left", 0, false},
		{"far right", w.cfg.World.Width - 20, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newPlayingWorld(t)
			w.PodsRemaining = 5
			w.Pod = Pod{X: tc.x, Y: w.LandingLevel(), Size: 20, Status: PodDropping}

			w.stepPod()

			if tc.lands && w.Pod.Status != PodReadyForTakeOff {
				t.Errorf("pod at x=%v should land, status %v", tc.x, w.Pod.Status)
			}
			if !tc.lands && w.Pod.Status != PodExploding {
				t.Errorf("pod at x=%v should explode, status %v", tc.x, w.Pod.Status)
			}
		})
	}
}

func TestDroppingAboveLandingLevel(t *testing.T) {
	w := newPlayingWorld(t)
	padLeft, _ := w.PadSpan()
	w.Pod = Pod{X: padLeft, Y: w.LandingLevel() - 1, Size: 20, Status: PodDropping}

	w.stepPod()

	if w.Pod.Status != PodDropping {
		t.Fatalf("pod status = %v, expected dropping", w.Pod.Status)
	}
	if w.Pod.Y != w.LandingLevel()-1+w.cfg.Pod.DropStep {
		t.Errorf("pod y = %v, expected one drop step lower", w.Pod.Y)
	}
}

func TestLaunchRequiresBoardedMan(t *testing.T) {
	w := newPlayingWorld(t)
	padLeft, _ := w.PadSpan()
	w.Pod = Pod{X: padLeft + 100, Y: w.LandingLevel(), Size: 20, Status: PodDropping}
	w.stepPod()

	w.LaunchPod()
	if w.Pod.Status != PodReadyForTakeOff {
		t.Fatal("launch during boarding should be ignored")
	}

	// Spawn x is 960, target is 615+15: 33 steps of 10 at most
	boarded := false
	for range 40 {
		w.sounds = w.sounds[:0]
		w.moveMan()
		if w.Man.Status == ManInactive {
			boarded = true
			break
		}
	}
	if !boarded {
		t.Fatal("man never reached the pod")
	}
	if !slices.Equal(w.Sounds(), []Sound{SoundSeatbelt}) {
		t.Errorf("sounds = %v, expected [seatbelt]", w.Sounds())
	}
	if x, _ := w.manSpawn(); w.Man.X != x {
		t.Errorf("man x = %v, expected reset to spawn %v", w.Man.X, x)
	}

	w.sounds = w.sounds[:0]
	w.LaunchPod()
	if w.Pod.Status != PodAscending {
		t.Fatalf("pod status = %v, expected ascending", w.Pod.Status)
	}
	if !slices.Equal(w.Sounds(), []Sound{SoundTakeOff}) {
		t.Errorf("sounds = %v, expected [take_off]", w.Sounds())
	}
}

func TestManDoesNotOvershoot(t *testing.T) {
	if got := approach(100, 95, 10); got != 95 {
		t.Errorf("approach(100, 95, 10) = %v, expected 95", got)
	}
	if got := approach(90, 95, 10); got != 95 {
		t.Errorf("approach(90, 95, 10) = %v, expected 95", got)
	}
	if got := approach(50, 95, 10); got != 60 {
		t.Errorf("approach(50, 95, 10) = %v, expected 60", got)
	}
}

func TestPrecisionDock(t *testing.T) {
	w := newPlayingWorld(t)
	w.MenToRescue = 2
	w.PodsRemaining = 3
	ms := w.Mothership
	w.Pod = Pod{X: ms.X + 10, Y: ms.Y + 5, Size: 20, Status: PodAscending}

	w.stepPod()

	if w.Pod.Status != PodInactive {
		t.Fatalf("pod status = %v, expected inactive", w.Pod.Status)
	}
	if w.MenToRescue != 1 {
		t.Errorf("men to rescue = %d, expected 1", w.MenToRescue)
	}
	if w.Rescued != 1 || w.PrecisionDocks != 1 {
		t.Errorf("rescued %d precision %d, expected 1 and 1", w.Rescued, w.PrecisionDocks)
	}
	if w.PodsRemaining != 4 {
		t.Errorf("pods remaining = %d, expected bonus to 4", w.PodsRemaining)
	}
	if !slices.Equal(w.Sounds(), []Sound{SoundDocked, SoundBonus}) {
		t.Errorf("sounds = %v, expected [docked bonus]", w.Sounds())
	}
}

func TestLastDockAdvancesLevel(t *testing.T) {
	w := newPlayingWorld(t)
	w.MenToRescue = 1
	w.PodsRemaining = 2
	ms := w.Mothership
	w.Pod = Pod{X: ms.X + 10, Y: ms.Y, Size: 20, Status: PodAscending}

	w.stepPod()

	if w.Level != 2 {
		t.Fatalf("level = %d, expected 2", w.Level)
	}
	if w.Status != StatusNewLevel {
		t.Errorf("status = %v, expected new_level", w.Status)
	}
	if w.MenToRescue != 3 {
		t.Errorf("men to rescue = %d, expected 3", w.MenToRescue)
	}
	if len(w.Asteroids) != 20 {
		t.Errorf("asteroid count = %d, expected a fresh field of 20", len(w.Asteroids))
	}
	// 2 + precision bonus carried over, then floor(1 + 0.6*3) = 2 granted
	if w.PodsCarriedOver != 3 || w.PodsRemaining != 5 {
		t.Errorf("carried %d remaining %d, expected 3 and 5", w.PodsCarriedOver, w.PodsRemaining)
	}
}

func TestAutoDock(t *testing.T) {
	w := newPlayingWorld(t)
	w.MenToRescue = 2
	w.PodsRemaining = 3
	w.Mothership.X = 500
	ms := w.Mothership
	w.Pod = Pod{X: 100, Y: ms.Y + 8, Size: 20, Status: PodAscending}

	w.stepPod()
	if w.Pod.Status != PodAutoDock {
		t.Fatalf("misaligned pod should auto-dock, status %v", w.Pod.Status)
	}

	docked := false
	for range 30 {
		prevX := w.Pod.X
		w.stepPod()
		if w.Pod.Y < ms.Y {
			t.Fatalf("pod rose above the mothership: y=%v", w.Pod.Y)
		}
		if w.Pod.Status == PodInactive {
			docked = true
			break
		}
		if w.Pod.X-prevX > w.cfg.Pod.AutoDockStep {
			t.Fatalf("auto-dock moved %v in one tick", w.Pod.X-prevX)
		}
	}

	if !docked {
		t.Fatal("auto-dock never completed")
	}
	if w.PrecisionDocks != 0 || w.PodsRemaining != 3 {
		t.Error("auto-dock should not count as a precision dock")
	}
	if slices.Contains(w.Sounds(), SoundBonus) {
		t.Error("auto-dock should not emit a bonus")
	}
	if w.Rescued != 1 {
		t.Errorf("rescued = %d, expected 1", w.Rescued)
	}
}

func TestExplosionLastsConfiguredTicks(t *testing.T) {
	w := newPlayingWorld(t)
	w.PodsRemaining = 3
	w.Pod = Pod{X: 300, Y: 300, Size: 20, Status: PodDropping}

	w.explode()
	if !w.Pod.FreshExplosion {
		t.Error("fresh flag should be set on the explosion tick")
	}
	if !slices.Equal(w.Sounds(), []Sound{SoundExplosion}) {
		t.Errorf("sounds = %v, expected [explosion]", w.Sounds())
	}

	ticks := w.cfg.Pod.ExplosionTicks
	for i := 1; i < ticks; i++ {
		w.stepPod()
		if w.Pod.Status != PodExploding {
			t.Fatalf("pod stopped exploding after %d ticks, expected %d", i, ticks)
		}
		if w.Pod.FreshExplosion {
			t.Fatal("fresh flag should clear after the first tick")
		}
	}

	w.stepPod()
	if w.Pod.Status != PodInactive {
		t.Errorf("pod status = %v after %d ticks, expected inactive", w.Pod.Status, ticks)
	}
}

func TestGameOverExactlyOnce(t *testing.T) {
	w := newPlayingWorld(t)
	w.PodsRemaining = 1
	w.Pod = Pod{X: 0, Y: w.LandingLevel(), Size: 20, Status: PodDropping}

	w.Tick()

	if w.Status != StatusGameOver {
		t.Fatalf("status = %v, expected game_over", w.Status)
	}
	if w.PodsRemaining != 0 {
		t.Errorf("pods remaining = %d, expected 0", w.PodsRemaining)
	}

	// Nothing is simulated after game over
	w.Pod = Pod{X: 0, Y: w.LandingLevel(), Size: 20, Status: PodDropping}
	for range 50 {
		w.Tick()
	}
	if w.PodsRemaining != 0 || w.Pod.Status != PodDropping {
		t.Error("simulation should be frozen after game over")
	}
	w.explode()
	if w.PodsRemaining != 0 {
		t.Errorf("reserve underflowed to %d", w.PodsRemaining)
	}
	if w.Status != StatusGameOver {
		t.Errorf("status = %v, expected game_over", w.Status)
	}
}

func TestNoPenaltyKeepsReserve(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	cfg.Debug.NoPenalty = true
	w := NewWorld(cfg, 1)
	w.Status = StatusPlaying
	pods := w.PodsRemaining
	w.Pod = Pod{X: 300, Y: 300, Size: 20, Status: PodDropping}

	w.explode()

	if w.PodsRemaining != pods {
		t.Errorf("pods remaining = %d, expected %d", w.PodsRemaining, pods)
	}
	if w.Status != StatusPlaying {
		t.Errorf("status = %v, expected playing", w.Status)
	}
}

func TestSteeringOnlyInFlight(t *testing.T) {
	w := newPlayingWorld(t)
	w.steerRight = true

	w.Pod = Pod{X: 300, Y: 300, Size: 20, Status: PodDropping}
	w.stepPod()
	if w.Pod.X != 304 {
		t.Errorf("dropping pod x = %v, expected 304", w.Pod.X)
	}

	padLeft, _ := w.PadSpan()
	w.Pod = Pod{X: padLeft, Y: w.LandingLevel(), Size: 20, Status: PodReadyForTakeOff}
	w.stepPod()
	if w.Pod.X != padLeft {
		t.Error("pod on the pad should not steer")
	}

	w.steerRight = false
	w.steerLeft = true
	w.Pod = Pod{X: 1, Y: 300, Size: 20, Status: PodAscending}
	w.stepPod()
	if w.Pod.X != 0 {
		t.Errorf("pod x = %v, expected clamp to 0", w.Pod.X)
	}
}
