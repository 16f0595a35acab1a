package key

import "strings"

// Input is a single key press: one key plus a set of modifiers. It is the
// smallest unit of a binding ("Ctrl+x" in binding text). Inputs are plain
// values; two inputs are equal iff key, rune and modifiers are equal.
type Input struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune inputs.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Mods
}

// NewInput creates an input from a key and modifiers, normalizing the Shift
// rule: Shift is dropped from character keys because the character already
// encodes the shift state ("A" already means Shift+A at the logical-key
// level). Space and Plus are named characters and keep Shift.
func NewInput(k Key, mods Mods) Input {
	in := Input{Key: k, Mods: mods}
	return in.normalize()
}

// NewRuneInput creates an input for a character key.
func NewRuneInput(r rune, mods Mods) Input {
	in := Input{Key: KeyRune, Rune: r, Mods: mods}
	return in.normalize()
}

func (in Input) normalize() Input {
	if !in.IsNamed() {
		in.Mods = in.Mods.Without(ModShift)
	}
	return in
}

// IsNamed reports whether the input's key is a named key, meaning it may be
// combined with the Shift modifier. The Space and Plus characters are named
// keys as an edge case of the grammar: they are written as "Space" and
// "Plus", not literally.
func (in Input) IsNamed() bool {
	if in.Key == KeyRune {
		return in.Rune == ' ' || in.Rune == '+'
	}
	return in.Key.IsNamed()
}

// Equals returns true if two inputs represent the same key press.
func (in Input) Equals(other Input) bool {
	return in == other
}

// String returns the canonical text for the input, such as "Ctrl+x" or
// "Alt+Shift+Enter". The output re-parses to an equal Input.
func (in Input) String() string {
	var sb strings.Builder
	if mods := in.Mods.String(); mods != "" {
		sb.WriteString(mods)
		sb.WriteByte('+')
	}
	sb.WriteString(in.keyName())
	return sb.String()
}

func (in Input) keyName() string {
	if in.Key != KeyRune {
		return in.Key.String()
	}
	switch in.Rune {
	case ' ':
		return "Space"
	case '+':
		return "Plus"
	default:
		return string(in.Rune)
	}
}
