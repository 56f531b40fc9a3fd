// Package keys translates LiveSplit hotkey bindings into Linux evdev
// key codes and tracks which bindings are active as keys are pressed
// and released.
//
// LiveSplit serializes bindings using the .NET Keys enumeration: a key
// name optionally followed by modifier names, e.g. "NumPad1" or
// "Space, Control, Shift".
package keys

import (
	"fmt"
	"strings"
)

// Modifier is a modifier class required by a chord. Either the left or
// the right variant of the physical key satisfies it.
type Modifier int

const (
	ModShift Modifier = iota
	ModControl
	ModAlt
)

// String returns the .NET name of the modifier.
func (m Modifier) String() string {
	switch m {
	case ModShift:
		return "Shift"
	case ModControl:
		return "Control"
	case ModAlt:
		return "Alt"
	default:
		return ""
	}
}

// Chord is a hotkey binding: a trigger key plus required modifiers.
type Chord struct {
	Trigger   uint16
	Modifiers []Modifier

	raw string // original binding string, kept for display
}

// String renders the chord in LiveSplit's serialization format.
func (c Chord) String() string {
	if c.raw != "" {
		return c.raw
	}
	parts := []string{fmt.Sprintf("key-%d", c.Trigger)}
	for _, m := range c.Modifiers {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, ", ")
}

// ParseChord parses a LiveSplit binding string into a Chord. The first
// element names the trigger key, the remaining elements name required
// modifiers.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return Chord{}, fmt.Errorf("empty binding")
	}

	code, ok := keyCodes[parts[0]]
	if !ok {
		return Chord{}, fmt.Errorf("unknown key name %q", parts[0])
	}

	c := Chord{Trigger: code, raw: s}
	for _, part := range parts[1:] {
		switch part {
		case "Shift":
			c.Modifiers = append(c.Modifiers, ModShift)
		case "Control":
			c.Modifiers = append(c.Modifiers, ModControl)
		case "Alt":
			c.Modifiers = append(c.Modifiers, ModAlt)
		case "":
			// trailing comma, tolerate
		default:
			return Chord{}, fmt.Errorf("unknown modifier %q in %q", part, s)
		}
	}

	return c, nil
}

// modifierCodes lists the evdev codes satisfying each modifier class.
var modifierCodes = map[Modifier][]uint16{
	ModShift:   {codeLeftShift, codeRightShift},
	ModControl: {codeLeftCtrl, codeRightCtrl},
	ModAlt:     {codeLeftAlt, codeRightAlt},
}
