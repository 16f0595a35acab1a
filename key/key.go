package key

import (
	"fmt"
	"strings"
)

// Key identifies a single logical key. A logical key is the key after layout
// and shift processing: typing Shift+9 on a US layout produces the '(' key.
// For character keys, use KeyRune and set the Rune field in Input.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Arrow keys
	KeyUp
	KeyRight
	KeyDown
	KeyLeft

	// Editing and navigation keys
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEsc
	KeyTab
	KeyBacktab
	KeyInsert

	// Clipboard and history keys
	KeyCopy
	KeyCut
	KeyPaste
	KeyClear
	KeyUndo
	KeyRedo

	// Zoom and lock keys
	KeyZoomIn
	KeyZoomOut
	KeyScrollLock
	KeyNumLock
	KeyFnLock
	KeyPrintScreen
	KeyMenu

	// Media keys
	KeyPlay
	KeyPause
	KeyPlayPause
	KeyStop
	KeyRewind
	KeyNextTrack
	KeyPrevTrack
	KeyVolumeUp
	KeyVolumeDown
	KeyMute

	// Function keys F1-F35. The range is contiguous so arithmetic on the
	// function key number is valid.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyF25
	KeyF26
	KeyF27
	KeyF28
	KeyF29
	KeyF30
	KeyF31
	KeyF32
	KeyF33
	KeyF34
	KeyF35

	// KeyUnidentified is a real key press that matches no known key. It is
	// buffered by the dispatcher like any other key but can never complete
	// a match.
	KeyUnidentified

	// KeyIgnored marks events that must not affect dispatcher state at all,
	// such as key releases or modifier-only presses.
	KeyIgnored

	// KeyRune is used for character keys. The character is stored in
	// Input.Rune.
	KeyRune
)

// keyNames holds the canonical rendering for every non-rune key. The parser
// accepts these names case-insensitively.
var keyNames = map[Key]string{
	KeyUp:           "Up",
	KeyRight:        "Right",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyEnter:        "Enter",
	KeyBackspace:    "Backspace",
	KeyDelete:       "Delete",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyEsc:          "Esc",
	KeyTab:          "Tab",
	KeyBacktab:      "Backtab",
	KeyInsert:       "Insert",
	KeyCopy:         "Copy",
	KeyCut:          "Cut",
	KeyPaste:        "Paste",
	KeyClear:        "Clear",
	KeyUndo:         "Undo",
	KeyRedo:         "Redo",
	KeyZoomIn:       "ZoomIn",
	KeyZoomOut:      "ZoomOut",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyFnLock:       "FnLock",
	KeyPrintScreen:  "PrintScreen",
	KeyMenu:         "Menu",
	KeyPlay:         "Play",
	KeyPause:        "Pause",
	KeyPlayPause:    "PlayPause",
	KeyStop:         "Stop",
	KeyRewind:       "Rewind",
	KeyNextTrack:    "NextTrack",
	KeyPrevTrack:    "PrevTrack",
	KeyVolumeUp:     "VolumeUp",
	KeyVolumeDown:   "VolumeDown",
	KeyMute:         "Mute",
	KeyUnidentified: "Unidentified",
	KeyIgnored:      "Ignored",
}

// keyNameMap maps lowercase key names (including aliases) to Key values.
// Built from keyNames in init so the two tables cannot drift.
var keyNameMap = map[string]Key{
	"escape": KeyEsc, // alias
}

func init() {
	for k, name := range keyNames {
		if k == KeyUnidentified || k == KeyIgnored {
			continue // sentinels are not parseable
		}
		keyNameMap[strings.ToLower(name)] = k
	}
}

// String returns the canonical name for the key. Rune keys render as "Rune";
// use Input.String for the character itself.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsFunctionKey() {
		return fmt.Sprintf("F%d", k-KeyF1+1)
	}
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// IsFunctionKey returns true if this is a function key (F1-F35).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF35
}

// IsNamed reports whether the key counts as a named key for the purpose of
// the Shift modifier rule. Named keys and function keys may carry Shift;
// character keys may not, because the character already encodes the shift
// state. Note that the Space and Plus character keys are treated as named
// keys since they are written by name in the binding grammar (see
// Input.IsNamed).
func (k Key) IsNamed() bool {
	switch k {
	case KeyNone, KeyRune, KeyUnidentified, KeyIgnored:
		return false
	default:
		return true
	}
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not a recognized named key.
func KeyFromName(name string) Key {
	if k, ok := keyNameMap[strings.ToLower(name)]; ok {
		return k
	}
	return KeyNone
}

// FunctionKey returns the function key for n in 1..35, or KeyNone when n is
// out of range.
func FunctionKey(n int) Key {
	if n < 1 || n > 35 {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}
