package widget

import "testing"

func TestFlagsSetClear(t *testing.T) {
	var f Flags
	f.Set(FlagDisabled)
	if !f.Has(FlagDisabled) {
		t.Error("Has(FlagDisabled) = false after Set")
	}
	if f.Has(FlagPressed) {
		t.Error("Has(FlagPressed) = true, never set")
	}
	f.Set(FlagPressed)
	f.Clear(FlagDisabled)
	if f.Has(FlagDisabled) {
		t.Error("Has(FlagDisabled) = true after Clear")
	}
	if !f.Has(FlagPressed) {
		t.Error("Clear(FlagDisabled) disturbed FlagPressed")
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "none"},
		{FlagDisabled, "disabled"},
		{FlagPressed, "pressed"},
		{FlagDisabled | FlagPressed, "disabled|pressed"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%b).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}
