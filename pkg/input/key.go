// Package input defines the raw input vocabulary consumed by widget
// controllers: keyboard keys and transitions, and pointer positions.
// It is backend-independent; pkg/terminal translates terminal input
// into these types.
package input

// Key identifies a keyboard key independent of any input backend.
type Key uint16

const (
	KeyNone Key = iota
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRune // a printable rune carried in KeyEvent.Rune
)

func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		return "None"
	}
}

// KeyState distinguishes press and release transitions.
type KeyState uint8

const (
	KeyStatePressed KeyState = iota
	KeyStateReleased
)

func (s KeyState) String() string {
	if s == KeyStateReleased {
		return "released"
	}
	return "pressed"
}

// KeyEvent is a single keyboard transition.
type KeyEvent struct {
	// Key is the logical key.
	Key Key
	// Rune is the printable rune for KeyRune keys, zero otherwise.
	Rune rune
	// State is the transition direction.
	State KeyState
	// Repeat marks an auto-repeat of a held key.
	Repeat bool
}

// IsPress reports whether the event is a non-repeat press transition.
// Auto-repeats are not presses for activation purposes.
func (e KeyEvent) IsPress() bool {
	return e.State == KeyStatePressed && !e.Repeat
}

// IsActivation reports whether the key is one of the activation keys
// (Enter or Space).
func (e KeyEvent) IsActivation() bool {
	return e.Key == KeyEnter || e.Key == KeySpace
}

// IsEscape reports whether the key is Escape.
func (e KeyEvent) IsEscape() bool {
	return e.Key == KeyEscape
}
