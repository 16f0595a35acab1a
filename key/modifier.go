package key

import (
	"runtime"
	"strings"
)

// Mods represents keyboard modifier keys as a set of flags.
type Mods uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mods = 0

	// ModCtrl indicates the Control key.
	ModCtrl Mods = 1 << iota

	// ModCmd indicates the Command key on macOS.
	ModCmd

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModWin indicates the Windows logo (or "OS") key.
	ModWin

	// ModShift indicates the Shift key. It may only be combined with named
	// keys; see Input.
	ModShift
)

// Has returns true if m contains the specified modifier.
func (m Mods) Has(mod Mods) bool {
	return m&mod != 0
}

// With returns a new Mods with the specified modifier added.
func (m Mods) With(mod Mods) Mods {
	return m | mod
}

// Without returns a new Mods with the specified modifier removed.
func (m Mods) Without(mod Mods) Mods {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Mods) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical representation like "Ctrl+Alt". The modifier
// order is fixed so the output round-trips through the parser.
func (m Mods) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModCmd) {
		parts = append(parts, "Cmd")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModWin) {
		parts = append(parts, "Win")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// Platform selects how the logical "Mod" and "Super" modifiers resolve to
// concrete flags. The logical modifiers exist only in binding text; after
// parsing, only concrete flags remain.
type Platform uint8

const (
	// PlatformOther resolves Mod to Ctrl and Super to Win.
	PlatformOther Platform = iota

	// PlatformDarwin resolves both Mod and Super to Cmd.
	PlatformDarwin
)

// CurrentPlatform returns the Platform for the running OS.
func CurrentPlatform() Platform {
	if runtime.GOOS == "darwin" {
		return PlatformDarwin
	}
	return PlatformOther
}

// Mod returns the concrete flag for the logical "Mod" modifier:
// Cmd on Darwin, Ctrl elsewhere.
func (p Platform) Mod() Mods {
	if p == PlatformDarwin {
		return ModCmd
	}
	return ModCtrl
}

// Super returns the concrete flag for the logical "Super" modifier:
// Cmd on Darwin, Win elsewhere.
func (p Platform) Super() Mods {
	if p == PlatformDarwin {
		return ModCmd
	}
	return ModWin
}

// modifierFromName resolves a modifier name (already lowercased) against the
// alias table, resolving the logical modifiers for the platform. Returns
// ModNone for unknown names.
func (p Platform) modifierFromName(name string) Mods {
	switch name {
	case "ctrl", "control":
		return ModCtrl
	case "cmd", "command":
		return ModCmd
	case "alt", "option":
		return ModAlt
	case "win", "windows":
		return ModWin
	case "shift":
		return ModShift
	case "mod":
		return p.Mod()
	case "super":
		return p.Super()
	default:
		return ModNone
	}
}
