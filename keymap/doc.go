// Package keymap loads and saves key binding tables as configuration files.
//
// A keymap document is a flat table mapping binding text to an action name,
// in TOML or JSON:
//
//	"Ctrl+Alt+Enter" = "OpenFile"
//	"Ctrl+x Ctrl+c"  = "ExitApp"
//
// Loading validates every entry; a document with any invalid binding yields
// no table and an error joining one EntryError per bad entry. Entries
// register in sorted order so binding priority is stable across loads.
//
// Watcher adds hot reload: it watches one keymap file with fsnotify and
// delivers each reload result to a callback.
package keymap
