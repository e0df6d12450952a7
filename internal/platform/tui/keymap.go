package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/xtarda-rescue/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Drop     key.Binding
	Launch   key.Binding
	Continue key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Launch, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Launch},
		{k.Continue, k.Pause, k.Restart},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "steer right"),
		),
		Drop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "drop pod"),
		),
		Launch: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "launch"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// Steer direction of a held key.
const (
	steerNone  = 0
	steerLeft  = -1
	steerRight = 1
)

// MapKey translates a key press into a one-shot game action.
// Steering keys return ActionNone and a direction; terminals only report
// presses, so the hold is tracked by steerHold.
func (k KeyMap) MapKey(msg tea.KeyMsg, paused bool) (action core.Action, steer int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, steerNone
	case key.Matches(msg, k.Left):
		return core.ActionNone, steerLeft
	case key.Matches(msg, k.Right):
		return core.ActionNone, steerRight
	case key.Matches(msg, k.Drop):
		return core.ActionDropPod, steerNone
	case key.Matches(msg, k.Launch):
		return core.ActionLaunchPod, steerNone
	case key.Matches(msg, k.Continue):
		return core.ActionContinue, steerNone
	case key.Matches(msg, k.Pause):
		if paused {
			return core.ActionResume, steerNone
		}
		return core.ActionPause, steerNone
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, steerNone
	}
	return core.ActionNone, steerNone
}

// steerHold emulates key release for steering. A press starts (or
// refreshes) the hold; when no repeat arrives within the window the hold
// is released. The first window is longer to cover the terminal's
// initial auto-repeat delay.
type steerHold struct {
	dir         int
	ticksLeft   int
	firstTicks  int
	repeatTicks int
}

func newSteerHold(tickRate int) steerHold {
	return steerHold{
		firstTicks:  max(tickRate/2, 1), // ~500ms
		repeatTicks: max(tickRate/8, 1), // ~125ms
	}
}

// press registers a steering key and appends the resulting actions.
func (h *steerHold) press(dir int, frame *core.InputFrame) {
	if dir == h.dir {
		h.ticksLeft = max(h.ticksLeft, h.repeatTicks)
		return
	}
	h.release(frame)
	h.dir = dir
	h.ticksLeft = h.firstTicks
	if dir == steerLeft {
		frame.Set(core.ActionSteerLeftStart)
	} else {
		frame.Set(core.ActionSteerRightStart)
	}
}

// tick counts down the hold and releases it when it expires.
func (h *steerHold) tick(frame *core.InputFrame) {
	if h.dir == steerNone {
		return
	}
	h.ticksLeft--
	if h.ticksLeft <= 0 {
		h.release(frame)
	}
}

func (h *steerHold) release(frame *core.InputFrame) {
	switch h.dir {
	case steerLeft:
		frame.Set(core.ActionSteerLeftStop)
	case steerRight:
		frame.Set(core.ActionSteerRightStop)
	}
	h.dir = steerNone
	h.ticksLeft = 0
}
