package tui

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
	"github.com/vovakirdan/xtarda-rescue/internal/storage"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		paused bool
		action core.Action
		steer  int
	}{
		{"q quits", runeKey('q'), false, core.ActionQuit, steerNone},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionQuit, steerNone},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, false, core.ActionQuit, steerNone},
		{"down drops", tea.KeyMsg{Type: tea.KeyDown}, false, core.ActionDropPod, steerNone},
		{"s drops", runeKey('s'), false, core.ActionDropPod, steerNone},
		{"up launches", tea.KeyMsg{Type: tea.KeyUp}, false, core.ActionLaunchPod, steerNone},
		{"enter continues", tea.KeyMsg{Type: tea.KeyEnter}, false, core.ActionContinue, steerNone},
		{"space continues", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false, core.ActionContinue, steerNone},
		{"p pauses", runeKey('p'), false, core.ActionPause, steerNone},
		{"p resumes when paused", runeKey('p'), true, core.ActionResume, steerNone},
		{"r restarts", runeKey('r'), false, core.ActionRestart, steerNone},
		{"left steers", tea.KeyMsg{Type: tea.KeyLeft}, false, core.ActionNone, steerLeft},
		{"d steers right", runeKey('d'), false, core.ActionNone, steerRight},
		{"unbound key", runeKey('z'), false, core.ActionNone, steerNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, steer := keys.MapKey(tt.msg, tt.paused)
			if action != tt.action || steer != tt.steer {
				t.Errorf("MapKey() = %v, %d; expected %v, %d", action, steer, tt.action, tt.steer)
			}
		})
	}
}

func TestSteerHoldReleasesAfterWindow(t *testing.T) {
	h := newSteerHold(60)
	frame := core.NewInputFrame()

	h.press(steerLeft, &frame)
	if !slices.Equal(frame.Actions(), []core.Action{core.ActionSteerLeftStart}) {
		t.Fatalf("press: got %v", frame.Actions())
	}
	frame.Clear()

	for i := 0; i < h.firstTicks-1; i++ {
		h.tick(&frame)
	}
	if len(frame.Actions()) != 0 {
		t.Fatalf("released early: %v", frame.Actions())
	}

	h.tick(&frame)
	if !slices.Equal(frame.Actions(), []core.Action{core.ActionSteerLeftStop}) {
		t.Errorf("expected release after the window, got %v", frame.Actions())
	}
	if h.dir != steerNone {
		t.Error("hold should be cleared")
	}
}

func TestSteerHoldRepeatKeepsHolding(t *testing.T) {
	h := newSteerHold(60)
	frame := core.NewInputFrame()

	h.press(steerRight, &frame)
	frame.Clear()

	// Auto-repeat every few ticks keeps the hold alive
	for i := 0; i < 100; i++ {
		if i%4 == 0 {
			h.press(steerRight, &frame)
		}
		h.tick(&frame)
	}
	if len(frame.Actions()) != 0 {
		t.Errorf("repeat should not emit actions, got %v", frame.Actions())
	}
	if h.dir != steerRight {
		t.Error("hold lost while repeating")
	}
}

func TestSteerHoldSwitchDirection(t *testing.T) {
	h := newSteerHold(60)
	frame := core.NewInputFrame()

	h.press(steerLeft, &frame)
	h.press(steerRight, &frame)

	want := []core.Action{core.ActionSteerLeftStart, core.ActionSteerLeftStop, core.ActionSteerRightStart}
	if !slices.Equal(frame.Actions(), want) {
		t.Errorf("got %v, expected %v", frame.Actions(), want)
	}
}

type recordingSound struct {
	played []lander.Sound
}

func (r *recordingSound) Play(sounds []lander.Sound) {
	r.played = append(r.played, sounds...)
}

type recordingStore struct {
	runs []storage.Run
	err  error
}

func (r *recordingStore) SaveRun(run storage.Run) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.runs = append(r.runs, run)
	return int64(len(r.runs)), nil
}

// fakeGame is a registry.Game whose state the test controls.
type fakeGame struct {
	state    core.GameState
	progress lander.Progress
	steps    [][]core.Action
	done     bool
}

func (f *fakeGame) ID() string                  { return "fake" }
func (f *fakeGame) Title() string               { return "Fake" }
func (f *fakeGame) Reset(core.RuntimeConfig)    {}
func (f *fakeGame) Render(dst *core.Screen)     { dst.DrawText(0, 0, "FAKE") }
func (f *fakeGame) State() core.GameState       { return f.state }
func (f *fakeGame) Done() bool                  { return f.done }
func (f *fakeGame) Progress() lander.Progress   { return f.progress }
func (f *fakeGame) DrainSounds() []lander.Sound { return nil }

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps = append(f.steps, slices.Clone(in.Actions()))
	if in.Has(core.ActionQuit) {
		f.done = true
	}
	return core.StepResult{State: f.state}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelDeliversKeysOnNextTick(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	want := []core.Action{core.ActionDropPod, core.ActionSteerLeftStart}
	if len(game.steps) != 1 || !slices.Equal(game.steps[0], want) {
		t.Fatalf("steps = %v, expected %v", game.steps, want)
	}

	// The frame is cleared after each step
	update(t, m, TickMsg(time.Now()))
	if len(game.steps[1]) != 0 {
		t.Errorf("second step got %v, expected no actions", game.steps[1])
	}
}

func TestModelQuitsWhenGameIsDone(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !m.quitting {
		t.Error("model should be quitting")
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesRunOncePerGameOver(t *testing.T) {
	game := &fakeGame{}
	store := &recordingStore{}
	m := NewModel(game, testConfig(), Options{Player: "ada", Store: store})

	game.state = core.GameState{Score: 4, Level: 3, GameOver: true}
	game.progress = lander.Progress{Level: 3, PrecisionDocks: 2}
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	if len(store.runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(store.runs))
	}
	want := storage.Run{Player: "ada", Level: 3, Rescued: 4, Precision: 2}
	if store.runs[0] != want {
		t.Errorf("run = %+v, expected %+v", store.runs[0], want)
	}

	// A new game over after a restart is saved again
	game.state = core.GameState{Level: 1}
	m, _ = update(t, m, TickMsg(time.Now()))
	game.state = core.GameState{Score: 1, Level: 1, GameOver: true}
	update(t, m, TickMsg(time.Now()))
	if len(store.runs) != 2 {
		t.Errorf("saved %d runs, expected 2", len(store.runs))
	}
}

func TestModelSkipsEmptyRunsAndSurvivesStoreErrors(t *testing.T) {
	game := &fakeGame{state: core.GameState{Level: 1, GameOver: true}}
	store := &recordingStore{}
	m := NewModel(game, testConfig(), Options{Store: store})
	m, _ = update(t, m, TickMsg(time.Now()))
	if len(store.runs) != 0 {
		t.Error("run without rescues should not be saved")
	}

	failing := &recordingStore{err: errors.New("disk full")}
	game.state = core.GameState{Score: 2, GameOver: true}
	m = NewModel(game, testConfig(), Options{Store: failing})
	if _, cmd := update(t, m, TickMsg(time.Now())); cmd == nil {
		t.Error("store error should not stop the game")
	}
}

func TestModelPlaysSoundsOfLander(t *testing.T) {
	sound := &recordingSound{}
	m := NewModel(lander.New(), testConfig(), Options{Sound: sound})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	update(t, m, TickMsg(time.Now()))

	if !slices.Contains(sound.played, lander.SoundDropPod) {
		t.Errorf("played %v, expected a drop cue", sound.played)
	}
}

func TestModelPauseToggle(t *testing.T) {
	game := lander.New()
	m := NewModel(game, testConfig(), Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.Status() != lander.StatusPaused {
		t.Fatalf("status = %v, expected paused", game.Status())
	}

	m, _ = update(t, m, runeKey('p'))
	update(t, m, TickMsg(time.Now()))
	if game.Status() != lander.StatusPlaying {
		t.Errorf("status = %v, expected playing", game.Status())
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})
	short := m.screen.Height()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-(24-short) {
		t.Errorf("screen = %dx%d after resize", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey('?'))
	if m.screen.Height() >= 40-(24-short) {
		t.Error("full help should take rows from the playfield")
	}

	view := m.View()
	if !strings.Contains(view, "FAKE") || !strings.Contains(view, "steer left") {
		t.Error("view should contain the game and the help")
	}
}

type recordingSpectator struct {
	frames []lander.Snapshot
	pilots []string
}

func (r *recordingSpectator) Publish(pilot string, snap lander.Snapshot) {
	r.pilots = append(r.pilots, pilot)
	r.frames = append(r.frames, snap)
}

func TestModelPublishesSnapshots(t *testing.T) {
	viewer := &recordingSpectator{}
	m := NewModel(lander.New(), testConfig(), Options{Player: "ada", Spec: viewer})

	for i := 0; i < 30; i++ {
		m, _ = update(t, m, TickMsg(time.Now()))
	}

	// 60 Hz ticks, published at 10 Hz
	if len(viewer.frames) != 5 {
		t.Fatalf("published %d frames, expected 5", len(viewer.frames))
	}
	if viewer.pilots[0] != "ada" {
		t.Errorf("pilot = %q", viewer.pilots[0])
	}
	if viewer.frames[0].Status != lander.StatusSplash {
		t.Errorf("status = %v, expected splash", viewer.frames[0].Status)
	}
}
