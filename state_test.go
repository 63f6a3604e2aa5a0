package triangle

import "testing"

func TestLoopCloseFirstReasonWins(t *testing.T) {
	var l loop
	if !l.running() || l.reason != CloseNone {
		t.Fatalf("zero loop should be running with no reason, got %v/%v", l.state, l.reason)
	}

	l.close(CloseEscape)
	l.close(CloseRequested)

	if l.running() {
		t.Error("loop should not be running after close")
	}
	if l.state != StateClosing {
		t.Errorf("state = %v, want %v", l.state, StateClosing)
	}
	if l.reason != CloseEscape {
		t.Errorf("reason = %v, want %v", l.reason, CloseEscape)
	}
}

func TestStateNames(t *testing.T) {
	if StateRunning.String() != "running" || StateClosing.String() != "closing" {
		t.Errorf("unexpected state names %q %q", StateRunning, StateClosing)
	}
	if CloseEscape.String() != "escape pressed" {
		t.Errorf("CloseEscape = %q", CloseEscape)
	}
	if KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape = %q", KeyEscape)
	}
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" {
		t.Errorf("unexpected stage names %q %q", StageVertex, StageFragment)
	}
}
