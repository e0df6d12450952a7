// Package lander implements Xtarda Rescue: a mothership patrols the top
// of the screen, the player drops a pod to pick up a stranded man and
// flies him back up through drifting asteroid rows.
//
// The package is pure simulation. It receives intents and ticks and
// exposes a snapshot and a queue of sound cues; drawing is limited to a
// core.Screen buffer and playback is left to the platform.
package lander

import (
	"github.com/vovakirdan/xtarda-rescue/internal/config"
	"github.com/vovakirdan/xtarda-rescue/internal/core"
)

// ID is the registry identifier of the game.
const ID = "lander"

// Game adapts a World to the registry.Game interface.
type Game struct {
	cfg     config.LanderConfig
	runtime core.RuntimeConfig
	world   *World
	pending []core.Action
	ticks   uint64
	done    bool
}

// New creates a game with the built-in configuration.
func New() *Game {
	return NewWithConfig(config.DefaultLanderConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.LanderConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Xtarda Rescue" }

// Reset discards the current world and starts a new run at the splash screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.world = NewWorld(g.cfg, runtime.Seed)
	g.pending = g.pending[:0]
	g.ticks = 0
	g.done = false
}

// Intent queues an action for the next Step.
func (g *Game) Intent(a core.Action) {
	if a == core.ActionNone {
		return
	}
	g.pending = append(g.pending, a)
}

// Step applies queued intents and the frame's actions, then advances the
// simulation one tick. Sounds from the previous tick are discarded.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.sounds = g.world.sounds[:0]

	for _, a := range g.pending {
		g.apply(a)
	}
	g.pending = g.pending[:0]
	for _, a := range in.Actions() {
		g.apply(a)
	}

	if !g.done {
		g.world.Tick()
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(a core.Action) {
	if g.world.Apply(a) {
		g.done = true
	}
}

// SetLevel jumps straight to level n.
func (g *Game) SetLevel(n int) {
	g.world.SetLevel(n)
}

// Restart resets the run to the splash screen, keeping the star field.
func (g *Game) Restart() {
	g.world.Restart()
}

// DrainSounds returns the cues of the last tick and clears the queue.
func (g *Game) DrainSounds() []Sound {
	return g.world.DrainSounds()
}

// Status returns the top-level screen.
func (g *Game) Status() GameStatus {
	return g.world.Status
}

// Progress returns the level and reserve counters.
func (g *Game) Progress() Progress {
	return g.world.Progress
}

// Done reports whether the player asked to quit.
func (g *Game) Done() bool {
	return g.done
}

// State returns the summary consumed by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Rescued,
		Level:    g.world.Level,
		GameOver: g.world.Status == StatusGameOver,
		Paused:   g.world.Status == StatusPaused,
		Done:     g.done,
	}
}
