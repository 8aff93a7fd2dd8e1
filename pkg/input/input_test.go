package input

import (
	"math"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEnter, "Enter"},
		{KeySpace, "Space"},
		{KeyEscape, "Escape"},
		{KeyRune, "Rune"},
		{Key(999), "None"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyEventIsPress(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want bool
	}{
		{"press", KeyEvent{Key: KeyEnter, State: KeyStatePressed}, true},
		{"release", KeyEvent{Key: KeyEnter, State: KeyStateReleased}, false},
		{"repeat", KeyEvent{Key: KeyEnter, State: KeyStatePressed, Repeat: true}, false},
	}
	for _, tt := range tests {
		if got := tt.ev.IsPress(); got != tt.want {
			t.Errorf("%s: IsPress() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyEventIsActivation(t *testing.T) {
	if !(KeyEvent{Key: KeyEnter}).IsActivation() {
		t.Error("Enter should be an activation key")
	}
	if !(KeyEvent{Key: KeySpace}).IsActivation() {
		t.Error("Space should be an activation key")
	}
	if (KeyEvent{Key: KeyEscape}).IsActivation() {
		t.Error("Escape should not be an activation key")
	}
	if (KeyEvent{Key: KeyRune, Rune: 'a'}).IsActivation() {
		t.Error("a rune key should not be an activation key")
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := a.DistanceTo(b); math.Abs(got-5) > 1e-9 {
		t.Errorf("DistanceTo = %v, want 5", got)
	}
	if got := a.DistanceTo(a); got != 0 {
		t.Errorf("DistanceTo(self) = %v, want 0", got)
	}
}
