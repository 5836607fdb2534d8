package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("zero frame should not have Jump")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true after Set")
	}
	if f.Has(ActionQuit) {
		t.Error("Has(Quit) should be false")
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Has(Jump) should be false after Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:       "None",
		ActionJump:       "Jump",
		ActionQuit:       "Quit",
		ActionScreenshot: "Screenshot",
		Action(99):       "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
