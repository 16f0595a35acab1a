// Package teakeys converts Bubble Tea messages into key inputs for dispatch.
//
// Conversion never fails: non-key messages become KeyIgnored and key
// messages the library has no representation for become KeyUnidentified, so
// an Update function can feed every message straight into a dispatcher.
package teakeys

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/keybind/key"
)

// namedKeys maps Bubble Tea's special key types to logical keys, including
// the arrow-with-modifier types Bubble Tea reports as distinct key types.
var namedKeys = map[tea.KeyType]key.Input{
	tea.KeyUp:        {Key: key.KeyUp},
	tea.KeyRight:     {Key: key.KeyRight},
	tea.KeyDown:      {Key: key.KeyDown},
	tea.KeyLeft:      {Key: key.KeyLeft},
	tea.KeyEnter:     {Key: key.KeyEnter},
	tea.KeyBackspace: {Key: key.KeyBackspace},
	tea.KeyDelete:    {Key: key.KeyDelete},
	tea.KeyHome:      {Key: key.KeyHome},
	tea.KeyEnd:       {Key: key.KeyEnd},
	tea.KeyPgUp:      {Key: key.KeyPageUp},
	tea.KeyPgDown:    {Key: key.KeyPageDown},
	tea.KeyEsc:       {Key: key.KeyEsc},
	tea.KeyTab:       {Key: key.KeyTab},
	tea.KeyShiftTab:  {Key: key.KeyBacktab},
	tea.KeyInsert:    {Key: key.KeyInsert},
	tea.KeySpace:     {Key: key.KeyRune, Rune: ' '},

	tea.KeyCtrlUp:         {Key: key.KeyUp, Mods: key.ModCtrl},
	tea.KeyCtrlRight:      {Key: key.KeyRight, Mods: key.ModCtrl},
	tea.KeyCtrlDown:       {Key: key.KeyDown, Mods: key.ModCtrl},
	tea.KeyCtrlLeft:       {Key: key.KeyLeft, Mods: key.ModCtrl},
	tea.KeyShiftUp:        {Key: key.KeyUp, Mods: key.ModShift},
	tea.KeyShiftRight:     {Key: key.KeyRight, Mods: key.ModShift},
	tea.KeyShiftDown:      {Key: key.KeyDown, Mods: key.ModShift},
	tea.KeyShiftLeft:      {Key: key.KeyLeft, Mods: key.ModShift},
	tea.KeyCtrlShiftUp:    {Key: key.KeyUp, Mods: key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftRight: {Key: key.KeyRight, Mods: key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftDown:  {Key: key.KeyDown, Mods: key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftLeft:  {Key: key.KeyLeft, Mods: key.ModCtrl | key.ModShift},
	tea.KeyCtrlHome:       {Key: key.KeyHome, Mods: key.ModCtrl},
	tea.KeyCtrlEnd:        {Key: key.KeyEnd, Mods: key.ModCtrl},
	tea.KeyCtrlPgUp:       {Key: key.KeyPageUp, Mods: key.ModCtrl},
	tea.KeyCtrlPgDown:     {Key: key.KeyPageDown, Mods: key.ModCtrl},
	tea.KeyShiftHome:      {Key: key.KeyHome, Mods: key.ModShift},
	tea.KeyShiftEnd:       {Key: key.KeyEnd, Mods: key.ModShift},

	tea.KeyF1:  {Key: key.KeyF1},
	tea.KeyF2:  {Key: key.KeyF2},
	tea.KeyF3:  {Key: key.KeyF3},
	tea.KeyF4:  {Key: key.KeyF4},
	tea.KeyF5:  {Key: key.KeyF5},
	tea.KeyF6:  {Key: key.KeyF6},
	tea.KeyF7:  {Key: key.KeyF7},
	tea.KeyF8:  {Key: key.KeyF8},
	tea.KeyF9:  {Key: key.KeyF9},
	tea.KeyF10: {Key: key.KeyF10},
	tea.KeyF11: {Key: key.KeyF11},
	tea.KeyF12: {Key: key.KeyF12},
	tea.KeyF13: {Key: key.KeyF13},
	tea.KeyF14: {Key: key.KeyF14},
	tea.KeyF15: {Key: key.KeyF15},
	tea.KeyF16: {Key: key.KeyF16},
	tea.KeyF17: {Key: key.KeyF17},
	tea.KeyF18: {Key: key.KeyF18},
	tea.KeyF19: {Key: key.KeyF19},
	tea.KeyF20: {Key: key.KeyF20},
}

// Msg converts any Bubble Tea message. Key messages convert through Input;
// every other message type returns KeyIgnored.
func Msg(msg tea.Msg) key.Input {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return Input(kmsg)
	}
	return key.Input{Key: key.KeyIgnored}
}

// Input converts a Bubble Tea key message into a key input.
//
// Bubble Tea folds Ctrl+letter into dedicated key types; those unfold back
// into the letter with the Ctrl modifier. Pasted text and multi-rune
// messages are not key presses and return KeyIgnored and KeyUnidentified
// respectively. The message's Alt flag becomes the Alt modifier.
func Input(msg tea.KeyMsg) key.Input {
	var mods key.Mods
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}

	switch {
	case msg.Paste:
		return key.Input{Key: key.KeyIgnored}

	case msg.Type == tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return key.NewInput(key.KeyUnidentified, mods)
		}
		return key.NewRuneInput(msg.Runes[0], mods)

	case msg.Type == tea.KeyCtrlAt:
		return key.NewRuneInput('@', mods.With(key.ModCtrl))

	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ &&
		msg.Type != tea.KeyTab && msg.Type != tea.KeyEnter:
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return key.NewRuneInput(r, mods.With(key.ModCtrl))
	}

	if proto, ok := namedKeys[msg.Type]; ok {
		if proto.Key == key.KeyRune {
			return key.NewRuneInput(proto.Rune, mods.With(proto.Mods))
		}
		return key.NewInput(proto.Key, mods.With(proto.Mods))
	}
	return key.NewInput(key.KeyUnidentified, mods)
}
