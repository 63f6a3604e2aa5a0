package triangle

// Key represents a keyboard key the loop polls for.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyNone:
		return "None"
	default:
		return "Unknown"
	}
}
