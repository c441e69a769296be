package core

import "testing"

func TestInputFrameLastDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionDown)

	d, ok := f.Direction()
	if !ok || d != DirDown {
		t.Errorf("Direction() = %v, %v; expected down, true", d, ok)
	}
	if f.Has(ActionLeft) {
		t.Error("earlier direction should be replaced")
	}
	if !f.Has(ActionDown) {
		t.Error("Has(ActionDown) should be true")
	}
}

func TestInputFrameNonDirectional(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)

	if !f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be true")
	}
	if _, ok := f.Direction(); ok {
		t.Error("Restart should not produce a direction")
	}

	f.Clear()
	if f.Has(ActionRestart) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionRestart)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionUp) || !clone.Has(ActionRestart) {
		t.Error("clone should keep actions after the original is cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
