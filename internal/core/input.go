package core

// Action is a discrete player intent, abstracted from physical keys.
// Steering is the only level-triggered intent: a Start action holds it
// until the matching Stop action arrives.
type Action int

const (
	ActionNone Action = iota
	ActionDropPod
	ActionLaunchPod
	ActionSteerLeftStart
	ActionSteerLeftStop
	ActionSteerRightStart
	ActionSteerRightStop
	ActionPause
	ActionResume
	ActionRestart
	ActionContinue // leave splash / new-level screens
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:            "None",
	ActionDropPod:         "DropPod",
	ActionLaunchPod:       "LaunchPod",
	ActionSteerLeftStart:  "SteerLeftStart",
	ActionSteerLeftStop:   "SteerLeftStop",
	ActionSteerRightStart: "SteerRightStart",
	ActionSteerRightStop:  "SteerRightStop",
	ActionPause:           "Pause",
	ActionResume:          "Resume",
	ActionRestart:         "Restart",
	ActionContinue:        "Continue",
	ActionQuit:            "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects the intents delivered for one simulation tick.
// Order is preserved so that e.g. a Stop followed by a Start in the same
// frame leaves steering held.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make([]Action, 0, 4)}
}

// Set appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was delivered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the frame's actions in delivery order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Clear resets the frame for the next tick, keeping its storage.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
