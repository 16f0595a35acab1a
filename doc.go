// Package keybind matches streams of key inputs against configurable key
// bindings, including multi-key sequences in the style of "Ctrl+x Ctrl+s"
// or vim's "g g".
//
// The two central types are Keybinds, an owned table of (sequence, action)
// pairs, and Dispatcher, the state machine that consumes inputs one at a
// time and reports when a binding completes:
//
//	binds := keybind.NewKeybinds[string]()
//	_ = binds.Bind("Ctrl+x Ctrl+c", "quit")
//	_ = binds.Bind("Ctrl+x", "prefix-help")
//
//	d := keybind.NewDispatcher(binds)
//	out := d.Feed(in, time.Now()) // from a tcellkeys/teakeys adapter
//	if out.Kind == keybind.OutcomeFired {
//	    execute(out.Action)
//	}
//
// When one binding is a strict prefix of another (as "Ctrl+x" above), the
// dispatcher waits rather than firing early; the embedding event loop calls
// CheckTimeout periodically, and after the configured quiet period the
// shorter binding fires. Dispatch never fails: every input resolves to one
// of the Outcome values.
//
// Actions are type-parameterized and opaque; the library never executes
// them. Binding text parses through the key package; configuration files
// load through the keymap package.
package keybind
