package keymap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keybind"
)

// ErrUnknownFormat is returned by LoadFile for a file extension it does not
// recognize.
var ErrUnknownFormat = errors.New("unknown keymap file format")

// EntryError reports a single bad entry in a keymap document: the binding
// text as written in the file and the underlying parse or registration error.
type EntryError struct {
	Binding string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("binding %q: %v", e.Binding, e.Err)
}

// Unwrap returns the underlying error for errors.Is matching.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Document is the on-disk keymap format: a flat table mapping binding text to
// an action name.
//
//	"Ctrl+Alt+Enter" = "OpenFile"
//	"Ctrl+x Ctrl+c"  = "ExitApp"
type Document map[string]string

// ParseTOML parses a TOML keymap document into a binding table. All entries
// are validated; on any failure the joined per-entry errors are returned and
// no table is.
func ParseTOML(data []byte) (*keybind.Keybinds[string], error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return buildKeybinds(doc)
}

// ParseJSON parses a JSON keymap document into a binding table, with the same
// all-or-nothing semantics as ParseTOML.
func ParseJSON(data []byte) (*keybind.Keybinds[string], error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return buildKeybinds(doc)
}

// LoadFile loads a keymap file, choosing the format by extension
// (".toml" or ".json").
func LoadFile(path string) (*keybind.Keybinds[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// buildKeybinds registers every document entry. Entries register in sorted
// binding-text order so first-registered-wins priority does not depend on
// map iteration.
func buildKeybinds(doc Document) (*keybind.Keybinds[string], error) {
	specs := make([]string, 0, len(doc))
	for spec := range doc {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	binds := keybind.NewKeybinds[string]()
	var errs []error
	for _, spec := range specs {
		if err := binds.Bind(spec, doc[spec]); err != nil {
			errs = append(errs, &EntryError{Binding: spec, Err: err})
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return binds, nil
}

// Export converts a binding table back to a document, rendering each sequence
// in canonical form. Documents round-trip: parsing an exported document
// reproduces the bindings.
func Export(binds *keybind.Keybinds[string]) Document {
	doc := make(Document, binds.Len())
	for _, bind := range binds.Binds() {
		doc[bind.Seq.String()] = bind.Action
	}
	return doc
}

// MarshalTOML renders a binding table as a TOML document. go-toml sorts map
// keys, so output is deterministic.
func MarshalTOML(binds *keybind.Keybinds[string]) ([]byte, error) {
	data, err := toml.Marshal(Export(binds))
	if err != nil {
		return nil, fmt.Errorf("encoding keymap: %w", err)
	}
	return data, nil
}

// MarshalJSON renders a binding table as an indented JSON document.
// encoding/json sorts map keys, so output is deterministic.
func MarshalJSON(binds *keybind.Keybinds[string]) ([]byte, error) {
	data, err := json.MarshalIndent(Export(binds), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding keymap: %w", err)
	}
	return data, nil
}

// SaveFile writes a binding table to a keymap file, choosing the format by
// extension like LoadFile.
func SaveFile(path string, binds *keybind.Keybinds[string]) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		data, err = MarshalTOML(binds)
	case ".json":
		data, err = MarshalJSON(binds)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
