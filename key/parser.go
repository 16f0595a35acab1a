package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors. Errors carrying an offending token wrap these sentinels, so
// callers match with errors.Is.
var (
	ErrEmptySequence    = errors.New("key sequence must not be empty")
	ErrEmptyKey         = errors.New("key must not be empty")
	ErrEmptyModifier    = errors.New("modifier must not be empty")
	ErrUnknownKey       = errors.New("unknown key")
	ErrUnknownModifier  = errors.New("unknown modifier")
	ErrShiftUnavailable = errors.New("shift modifier is only available with named keys")
)

// Parse parses a single key combination such as "a", "Ctrl+x" or
// "Alt+Shift+Enter", resolving the logical Mod/Super modifiers for the
// running platform.
func Parse(spec string) (Input, error) {
	return ParseFor(spec, CurrentPlatform())
}

// ParseFor is Parse with an explicit platform, for tools that parse bindings
// for a platform other than the one they run on.
func ParseFor(spec string, plat Platform) (Input, error) {
	spec = trimASCIISpace(spec)

	parts := strings.Split(spec, "+")
	var mods Mods
	for _, p := range parts[:len(parts)-1] {
		p = trimASCIISpace(p)
		if p == "" {
			return Input{}, ErrEmptyModifier
		}
		mod := plat.modifierFromName(strings.ToLower(p))
		if mod == ModNone {
			return Input{}, fmt.Errorf("%w %q", ErrUnknownModifier, p)
		}
		mods = mods.With(mod)
	}

	keyTok := trimASCIISpace(parts[len(parts)-1])
	in, err := parseKey(keyTok)
	if err != nil {
		return Input{}, err
	}
	in.Mods = mods
	if mods.Has(ModShift) && !in.IsNamed() {
		return Input{}, fmt.Errorf("%w: %q", ErrShiftUnavailable, keyTok)
	}
	return in, nil
}

// ParseSequence parses a whole key sequence: one or more key combinations
// separated by ASCII whitespace, such as "Ctrl+x Ctrl+s" or "h e l l o".
func ParseSequence(spec string) (Seq, error) {
	return ParseSequenceFor(spec, CurrentPlatform())
}

// ParseSequenceFor is ParseSequence with an explicit platform.
func ParseSequenceFor(spec string, plat Platform) (Seq, error) {
	tokens := splitASCIISpace(spec)
	if len(tokens) == 0 {
		return Seq{}, ErrEmptySequence
	}

	inputs := make([]Input, 0, len(tokens))
	for _, tok := range tokens {
		in, err := ParseFor(tok, plat)
		if err != nil {
			return Seq{}, err
		}
		inputs = append(inputs, in)
	}
	return Seq{Inputs: inputs}, nil
}

// MustParseSequence parses a sequence and panics on error. Use only for
// known-valid sequences in initialization code.
func MustParseSequence(spec string) Seq {
	seq, err := ParseSequence(spec)
	if err != nil {
		panic("invalid key sequence: " + spec + ": " + err.Error())
	}
	return seq
}

// parseKey parses the key token of a combination: a named key, a function
// key, or a single character. The token never contains ASCII whitespace,
// but non-ASCII whitespace characters are valid character keys.
func parseKey(tok string) (Input, error) {
	if tok == "" {
		return Input{}, ErrEmptyKey
	}

	// A single code point is always a character key, even when it collides
	// with a key-name initial like "f".
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		return Input{Key: KeyRune, Rune: r}, nil
	}

	lower := strings.ToLower(tok)

	// Space and Plus are written by name because a literal space would split
	// the sequence and a literal plus would split the combination.
	switch lower {
	case "space":
		return Input{Key: KeyRune, Rune: ' '}, nil
	case "plus":
		return Input{Key: KeyRune, Rune: '+'}, nil
	}

	if k := KeyFromName(lower); k != KeyNone {
		return Input{Key: k}, nil
	}

	if k, ok := parseFunctionKey(lower); ok {
		return Input{Key: k}, nil
	}

	return Input{}, fmt.Errorf("%w %q", ErrUnknownKey, tok)
}

// parseFunctionKey matches "f" followed by digits. Values outside 1..35 are
// not valid function keys; the caller reports them as unknown.
func parseFunctionKey(lower string) (Key, bool) {
	if len(lower) < 2 || lower[0] != 'f' {
		return KeyNone, false
	}
	n := 0
	for _, c := range lower[1:] {
		if c < '0' || c > '9' {
			return KeyNone, false
		}
		n = n*10 + int(c-'0')
		if n > 35 {
			return KeyNone, false
		}
	}
	if k := FunctionKey(n); k != KeyNone {
		return k, true
	}
	return KeyNone, false
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// trimASCIISpace trims ASCII whitespace only. Non-ASCII whitespace such as
// U+3000 is a valid character key and must survive trimming.
func trimASCIISpace(s string) string {
	return strings.TrimFunc(s, isASCIISpace)
}

// splitASCIISpace splits on runs of ASCII whitespace, dropping empty fields.
func splitASCIISpace(s string) []string {
	return strings.FieldsFunc(s, isASCIISpace)
}
