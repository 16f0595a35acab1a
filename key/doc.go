// Package key provides the value types and grammar parser for key bindings.
//
// The fundamental types are:
//
//   - Key: identifies a logical keyboard key (named keys, function keys, or
//     character keys via KeyRune)
//   - Mods: modifier flags (Ctrl, Cmd, Alt, Win, Shift)
//   - Input: a single key press, one Key plus Mods
//   - Seq: an ordered sequence of Inputs forming a binding
//
// # Binding grammar
//
// A binding is one or more key combinations separated by ASCII whitespace.
// A combination is zero or more modifier names joined to one key with "+":
//
//	"a"              - single character key
//	"Ctrl+x"         - modifier plus character
//	"Alt+Shift+Up"   - multiple modifiers plus named key
//	"Ctrl+x Ctrl+s"  - two-combination sequence
//	"h e l l o"      - five-combination sequence
//
// Modifier and key names are case-insensitive. The logical modifiers "Mod"
// and "Super" resolve to concrete flags per platform at parse time: Cmd/Cmd
// on macOS, Ctrl/Win elsewhere. Character keys are case-sensitive ("a" and
// "A" are distinct keys) and may not carry the Shift modifier, because the
// character itself already encodes the shift state.
//
// Canonical rendering via the String methods round-trips: parsing the output
// of Seq.String yields an equal Seq.
package key
