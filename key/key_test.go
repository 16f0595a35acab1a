package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyUp, "Up"},
		{KeyEnter, "Enter"},
		{KeyEsc, "Esc"},
		{KeyBacktab, "Backtab"},
		{KeyPageDown, "PageDown"},
		{KeyPlayPause, "PlayPause"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyF35, "F35"},
		{KeyUnidentified, "Unidentified"},
		{KeyIgnored, "Ignored"},
		{KeyNone, "None"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"up", KeyUp},
		{"Up", KeyUp},
		{"ENTER", KeyEnter},
		{"esc", KeyEsc},
		{"escape", KeyEsc},
		{"backtab", KeyBacktab},
		{"volumeup", KeyVolumeUp},
		{"unidentified", KeyNone}, // sentinels are not parseable
		{"ignored", KeyNone},
		{"bogus", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFunctionKey(t *testing.T) {
	tests := []struct {
		n    int
		want Key
	}{
		{1, KeyF1},
		{12, KeyF12},
		{35, KeyF35},
		{0, KeyNone},
		{36, KeyNone},
		{-1, KeyNone},
	}

	for _, tt := range tests {
		if got := FunctionKey(tt.n); got != tt.want {
			t.Errorf("FunctionKey(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestKeyIsFunctionKey(t *testing.T) {
	if !KeyF1.IsFunctionKey() || !KeyF35.IsFunctionKey() {
		t.Error("F1 and F35 should be function keys")
	}
	if KeyUp.IsFunctionKey() || KeyRune.IsFunctionKey() {
		t.Error("Up and Rune should not be function keys")
	}
}

func TestKeyIsNamed(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyUp, true},
		{KeyEnter, true},
		{KeyF7, true},
		{KeyNone, false},
		{KeyRune, false},
		{KeyUnidentified, false},
		{KeyIgnored, false},
	}

	for _, tt := range tests {
		if got := tt.key.IsNamed(); got != tt.want {
			t.Errorf("%v.IsNamed() = %v, want %v", tt.key, got, tt.want)
		}
	}
}
