package core

import "testing"

func TestInputFrameOrderAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSteerLeftStop)
	f.Set(ActionNone)
	f.Set(ActionSteerLeftStart)

	got := f.Actions()
	if len(got) != 2 {
		t.Fatalf("expected 2 actions (None dropped), got %d", len(got))
	}
	if got[0] != ActionSteerLeftStop || got[1] != ActionSteerLeftStart {
		t.Errorf("actions out of order: %v", got)
	}
	if !f.Has(ActionSteerLeftStart) || f.Has(ActionDropPod) {
		t.Error("Has() returned wrong result")
	}

	f.Clear()
	if len(f.Actions()) != 0 {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionDropPod.String() != "DropPod" {
		t.Errorf("ActionDropPod.String() = %q", ActionDropPod.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
