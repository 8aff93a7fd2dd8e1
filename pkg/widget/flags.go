package widget

import "strings"

// Flags is the capability bit set carried by an entity alongside its
// record. Flags are checked by presence.
type Flags uint32

const (
	// FlagDisabled makes activation paths inert while set.
	FlagDisabled Flags = 1 << iota
	// FlagPressed marks a button between pointer press and release.
	// Only the button controller writes it.
	FlagPressed
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Set returns f with the bits of flag set.
func (f Flags) Set(flag Flags) Flags {
	return f | flag
}

// Clear returns f with the bits of flag cleared.
func (f Flags) Clear(flag Flags) Flags {
	return f &^ flag
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(FlagDisabled) {
		parts = append(parts, "disabled")
	}
	if f.Has(FlagPressed) {
		parts = append(parts, "pressed")
	}
	return strings.Join(parts, "|")
}
