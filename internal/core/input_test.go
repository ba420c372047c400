package core

import "testing"

func TestActionIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionNone:    false,
		ActionUp:      true,
		ActionDown:    true,
		ActionLeft:    true,
		ActionRight:   true,
		ActionConfirm: false,
		ActionRestart: false,
		ActionQuit:    false,
		ActionPause:   false,
	}
	for a, want := range moves {
		if got := a.IsMove(); got != want {
			t.Errorf("%s.IsMove() = %v, want %v", a, got, want)
		}
	}
}

func TestInputFrameKeepsOrderAndRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionNone)
	f.Set(ActionRight)
	f.Set(ActionUp)

	got := f.Actions()
	want := []Action{ActionRight, ActionRight, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear() should drop every action")
	}
}
