package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/key"
)

const tomlDoc = `
"Ctrl+Alt+Enter" = "OpenFile"
"Ctrl+x Ctrl+c" = "ExitApp"
"h e l l o" = "SayHello"
`

const jsonDoc = `{
  "Ctrl+Alt+Enter": "OpenFile",
  "Ctrl+x Ctrl+c": "ExitApp",
  "h e l l o": "SayHello"
}`

func TestParseTOML(t *testing.T) {
	binds, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("ParseTOML error = %v", err)
	}
	checkDemoBindings(t, binds)
}

func TestParseJSON(t *testing.T) {
	binds, err := ParseJSON([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("ParseJSON error = %v", err)
	}
	checkDemoBindings(t, binds)
}

func checkDemoBindings(t *testing.T, binds *keybind.Keybinds[string]) {
	t.Helper()
	if binds.Len() != 3 {
		t.Fatalf("Len = %d, want 3", binds.Len())
	}

	buffer := key.MustParseSequence("Ctrl+x Ctrl+c").Inputs
	bind, _ := binds.Find(buffer)
	if bind == nil || bind.Action != "ExitApp" {
		t.Error("Ctrl+x Ctrl+c should map to ExitApp")
	}
}

func TestParseTOMLBadSyntax(t *testing.T) {
	if _, err := ParseTOML([]byte(`"Ctrl+x" = = "broken"`)); err == nil {
		t.Error("expected a decode error")
	}
}

func TestParseTOMLBadEntries(t *testing.T) {
	doc := `
"Ctrl+x" = "Fine"
"Bogus+y" = "BadModifier"
"Shift+a" = "BadShift"
`
	binds, err := ParseTOML([]byte(doc))
	if binds != nil {
		t.Error("no table should be returned when any entry is invalid")
	}
	if !errors.Is(err, key.ErrUnknownModifier) {
		t.Errorf("error should include the unknown-modifier entry, got %v", err)
	}
	if !errors.Is(err, key.ErrShiftUnavailable) {
		t.Errorf("error should include the shift entry, got %v", err)
	}

	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("error should expose *EntryError, got %v", err)
	}
	if entryErr.Binding != "Bogus+y" {
		t.Errorf("first entry error binding = %q, want %q (sorted order)", entryErr.Binding, "Bogus+y")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "keymap.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlDoc), 0644); err != nil {
		t.Fatal(err)
	}
	binds, err := LoadFile(tomlPath)
	if err != nil {
		t.Fatalf("LoadFile(toml) error = %v", err)
	}
	checkDemoBindings(t, binds)

	jsonPath := filepath.Join(dir, "keymap.json")
	if err := os.WriteFile(jsonPath, []byte(jsonDoc), 0644); err != nil {
		t.Fatal(err)
	}
	binds, err = LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json) error = %v", err)
	}
	checkDemoBindings(t, binds)
}

func TestLoadFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymap.yaml")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFile error = %v, want ErrUnknownFormat", err)
	}
}

func TestExportCanonicalizes(t *testing.T) {
	binds, err := ParseTOML([]byte(`"ctrl+x CTRL+c" = "ExitApp"`))
	if err != nil {
		t.Fatalf("ParseTOML error = %v", err)
	}

	doc := Export(binds)
	if action, ok := doc["Ctrl+x Ctrl+c"]; !ok || action != "ExitApp" {
		t.Errorf("Export = %v, want canonical key %q", doc, "Ctrl+x Ctrl+c")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	binds, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("ParseTOML error = %v", err)
	}

	data, err := MarshalTOML(binds)
	if err != nil {
		t.Fatalf("MarshalTOML error = %v", err)
	}
	again, err := ParseTOML(data)
	if err != nil {
		t.Fatalf("re-parse TOML error = %v", err)
	}
	if again.Len() != binds.Len() {
		t.Errorf("TOML round trip: %d bindings, want %d", again.Len(), binds.Len())
	}

	data, err = MarshalJSON(binds)
	if err != nil {
		t.Fatalf("MarshalJSON error = %v", err)
	}
	again, err = ParseJSON(data)
	if err != nil {
		t.Fatalf("re-parse JSON error = %v", err)
	}
	if again.Len() != binds.Len() {
		t.Errorf("JSON round trip: %d bindings, want %d", again.Len(), binds.Len())
	}
}

func TestSaveFile(t *testing.T) {
	binds, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatalf("ParseTOML error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := SaveFile(path, binds); err != nil {
		t.Fatalf("SaveFile error = %v", err)
	}
	again, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error = %v", err)
	}
	checkDemoBindings(t, again)
}
