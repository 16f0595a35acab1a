// Package tcellkeys converts tcell terminal events into key inputs for
// dispatch.
//
// Conversion never fails: non-key events become KeyIgnored and key events
// the library has no representation for become KeyUnidentified, so an event
// loop can feed everything it receives straight into a dispatcher.
package tcellkeys

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind/key"
)

// namedKeys maps tcell's special keys to logical keys.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyUp:      key.KeyUp,
	tcell.KeyRight:   key.KeyRight,
	tcell.KeyDown:    key.KeyDown,
	tcell.KeyLeft:    key.KeyLeft,
	tcell.KeyEnter:   key.KeyEnter,
	tcell.KeyDelete:  key.KeyDelete,
	tcell.KeyHome:    key.KeyHome,
	tcell.KeyEnd:     key.KeyEnd,
	tcell.KeyPgUp:    key.KeyPageUp,
	tcell.KeyPgDn:    key.KeyPageDown,
	tcell.KeyEscape:  key.KeyEsc,
	tcell.KeyTab:     key.KeyTab,
	tcell.KeyBacktab: key.KeyBacktab,
	tcell.KeyInsert:  key.KeyInsert,
	tcell.KeyClear:   key.KeyClear,
	tcell.KeyPrint:   key.KeyPrintScreen,
	tcell.KeyPause:   key.KeyPause,
}

// Event converts any tcell event. Key events convert through Input; all
// other event types (resize, mouse, paste, focus) return KeyIgnored.
func Event(ev tcell.Event) key.Input {
	if kev, ok := ev.(*tcell.EventKey); ok {
		return Input(kev)
	}
	return key.Input{Key: key.KeyIgnored}
}

// Input converts a tcell key event into a key input.
//
// tcell folds Ctrl+letter into dedicated key codes (KeyCtrlA..KeyCtrlZ);
// those unfold back into the letter with the Ctrl modifier so they match
// bindings written as "Ctrl+a". Tab and Enter keep their named form because
// their codes collide with Ctrl+i and Ctrl+m.
func Input(ev *tcell.EventKey) key.Input {
	mods := convertMods(ev.Modifiers())

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return key.NewRuneInput(ev.Rune(), mods)

	case k == tcell.KeyBackspace || k == tcell.KeyBackspace2:
		return key.NewInput(key.KeyBackspace, mods)

	case k >= tcell.KeyF1 && k <= tcell.KeyF64:
		n := int(k-tcell.KeyF1) + 1
		if fk := key.FunctionKey(n); fk != key.KeyNone {
			return key.NewInput(fk, mods)
		}
		return key.NewInput(key.KeyUnidentified, mods)

	case k == tcell.KeyCtrlSpace:
		return key.NewRuneInput(' ', mods.With(key.ModCtrl))

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ &&
		k != tcell.KeyTab && k != tcell.KeyEnter:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneInput(r, mods.With(key.ModCtrl))
	}

	if named, ok := namedKeys[k]; ok {
		return key.NewInput(named, mods)
	}
	return key.NewInput(key.KeyUnidentified, mods)
}

// convertMods translates tcell's modifier mask. tcell's Meta is the terminal
// meta key, which macOS terminals send for Command.
func convertMods(m tcell.ModMask) key.Mods {
	var mods key.Mods
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModCmd)
	}
	return mods
}
