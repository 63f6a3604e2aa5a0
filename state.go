package triangle

// LoopState is the state of the render loop.
type LoopState int

const (
	StateRunning LoopState = iota
	StateClosing           // Terminal
)

// String returns the state name.
func (s LoopState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// CloseReason records why the loop left StateRunning.
type CloseReason int

const (
	CloseNone       CloseReason = iota
	CloseRequested              // Window system asked the window to close
	CloseEscape                 // Escape read as pressed during input polling
	CloseFrameLimit             // WithMaxFrames limit reached
	CloseError                  // A frame observer failed
)

// String returns the reason name.
func (r CloseReason) String() string {
	switch r {
	case CloseNone:
		return "none"
	case CloseRequested:
		return "window close requested"
	case CloseEscape:
		return "escape pressed"
	case CloseFrameLimit:
		return "frame limit reached"
	case CloseError:
		return "frame observer error"
	default:
		return "unknown"
	}
}

// loop tracks the state machine. Transitions only go running -> closing.
type loop struct {
	state  LoopState
	reason CloseReason
	frames int
}

// close moves to StateClosing. The first reason wins.
func (l *loop) close(reason CloseReason) {
	if l.state == StateClosing {
		return
	}
	l.state = StateClosing
	l.reason = reason
}

func (l *loop) running() bool {
	return l.state == StateRunning
}
