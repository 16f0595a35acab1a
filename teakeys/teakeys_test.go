package teakeys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/keybind/key"
)

func TestInput(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want key.Input
	}{
		{
			"plain rune",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}},
			key.NewRuneInput('a', key.ModNone),
		},
		{
			"alt rune",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}, Alt: true},
			key.NewRuneInput('f', key.ModAlt),
		},
		{
			"multi-rune is unidentified",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a', 'b'}},
			key.NewInput(key.KeyUnidentified, key.ModNone),
		},
		{
			"paste is ignored",
			tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true},
			key.Input{Key: key.KeyIgnored},
		},
		{
			"ctrl letter unfolds",
			tea.KeyMsg{Type: tea.KeyCtrlX},
			key.NewRuneInput('x', key.ModCtrl),
		},
		{
			"ctrl letter with alt",
			tea.KeyMsg{Type: tea.KeyCtrlS, Alt: true},
			key.NewRuneInput('s', key.ModCtrl|key.ModAlt),
		},
		{
			"tab stays named",
			tea.KeyMsg{Type: tea.KeyTab},
			key.NewInput(key.KeyTab, key.ModNone),
		},
		{
			"enter stays named",
			tea.KeyMsg{Type: tea.KeyEnter},
			key.NewInput(key.KeyEnter, key.ModNone),
		},
		{
			"shift tab is backtab",
			tea.KeyMsg{Type: tea.KeyShiftTab},
			key.NewInput(key.KeyBacktab, key.ModNone),
		},
		{
			"space is the space character",
			tea.KeyMsg{Type: tea.KeySpace},
			key.NewRuneInput(' ', key.ModNone),
		},
		{
			"escape",
			tea.KeyMsg{Type: tea.KeyEsc},
			key.NewInput(key.KeyEsc, key.ModNone),
		},
		{
			"arrow with ctrl type",
			tea.KeyMsg{Type: tea.KeyCtrlUp},
			key.NewInput(key.KeyUp, key.ModCtrl),
		},
		{
			"arrow with shift type",
			tea.KeyMsg{Type: tea.KeyShiftDown},
			key.NewInput(key.KeyDown, key.ModShift),
		},
		{
			"arrow with ctrl shift and alt flag",
			tea.KeyMsg{Type: tea.KeyCtrlShiftLeft, Alt: true},
			key.NewInput(key.KeyLeft, key.ModCtrl|key.ModShift|key.ModAlt),
		},
		{
			"function key",
			tea.KeyMsg{Type: tea.KeyF12},
			key.NewInput(key.KeyF12, key.ModNone),
		},
		{
			"ctrl at",
			tea.KeyMsg{Type: tea.KeyCtrlAt},
			key.NewRuneInput('@', key.ModCtrl),
		},
	}

	for _, tt := range tests {
		if got := Input(tt.msg); got != tt.want {
			t.Errorf("%s: Input = %v, want %v", tt.name, got, tt.want)
		}
	}
}

type otherMsg struct{}

func TestMsg(t *testing.T) {
	in := Msg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if in.Key != key.KeyRune || in.Rune != 'a' {
		t.Errorf("key msg converted to %v", in)
	}

	in = Msg(otherMsg{})
	if in.Key != key.KeyIgnored {
		t.Errorf("non-key msg = %v, want KeyIgnored", in)
	}

	in = Msg(tea.WindowSizeMsg{Width: 80, Height: 24})
	if in.Key != key.KeyIgnored {
		t.Errorf("window size msg = %v, want KeyIgnored", in)
	}
}
