package key

import "testing"

func TestModsHas(t *testing.T) {
	m := ModCtrl | ModAlt
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Error("Has should report Ctrl and Alt")
	}
	if m.Has(ModShift) || m.Has(ModCmd) {
		t.Error("Has should not report Shift or Cmd")
	}
}

func TestModsWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if m != ModCtrl|ModShift {
		t.Errorf("With chain = %v, want Ctrl|Shift", m)
	}
	m = m.Without(ModShift)
	if m != ModCtrl {
		t.Errorf("Without(Shift) = %v, want Ctrl", m)
	}
	if !ModNone.IsEmpty() || m.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
}

func TestModsString(t *testing.T) {
	tests := []struct {
		mods Mods
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModShift | ModCtrl, "Ctrl+Shift"}, // fixed order regardless of flag order
		{ModWin | ModAlt | ModCmd | ModCtrl | ModShift, "Ctrl+Cmd+Alt+Win+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mods.String(); got != tt.want {
			t.Errorf("Mods.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPlatformLogicalModifiers(t *testing.T) {
	if got := PlatformDarwin.Mod(); got != ModCmd {
		t.Errorf("Darwin Mod() = %v, want Cmd", got)
	}
	if got := PlatformOther.Mod(); got != ModCtrl {
		t.Errorf("Other Mod() = %v, want Ctrl", got)
	}
	if got := PlatformDarwin.Super(); got != ModCmd {
		t.Errorf("Darwin Super() = %v, want Cmd", got)
	}
	if got := PlatformOther.Super(); got != ModWin {
		t.Errorf("Other Super() = %v, want Win", got)
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Mods
	}{
		{"ctrl", ModCtrl},
		{"control", ModCtrl},
		{"cmd", ModCmd},
		{"command", ModCmd},
		{"alt", ModAlt},
		{"option", ModAlt},
		{"win", ModWin},
		{"windows", ModWin},
		{"shift", ModShift},
		{"hyper", ModNone},
		{"", ModNone},
	}

	for _, tt := range tests {
		if got := PlatformOther.modifierFromName(tt.name); got != tt.want {
			t.Errorf("modifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
