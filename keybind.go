package keybind

import (
	"errors"
	"fmt"

	"github.com/dshills/keybind/key"
)

// Binding errors.
var (
	ErrEmptySequence     = errors.New("binding sequence must not be empty")
	ErrDuplicateSequence = errors.New("sequence is already bound")
)

// Keybind is a single key binding: a key sequence paired with the action it
// triggers. The action is an opaque caller-supplied value; the library never
// inspects it.
type Keybind[A any] struct {
	// Seq is the key sequence that triggers the action.
	Seq key.Seq

	// Action is the value returned when the sequence completes.
	Action A
}

// NewKeybind creates a binding from a sequence and an action.
func NewKeybind[A any](seq key.Seq, action A) Keybind[A] {
	return Keybind[A]{Seq: seq, Action: action}
}

// Keybinds is an ordered collection of key bindings. Registration validates
// each binding; lookup answers the two questions the dispatcher needs: does
// a buffer match a binding exactly, and is it a strict prefix of one.
//
// Two bindings may share a prefix relationship (one sequence a strict prefix
// of another); resolving that ambiguity is the dispatcher's job. Identical
// sequences are rejected at registration.
type Keybinds[A any] struct {
	binds []Keybind[A]
}

// NewKeybinds creates an empty binding collection.
func NewKeybinds[A any]() *Keybinds[A] {
	return &Keybinds[A]{}
}

// Register adds a binding for the given sequence. It fails with
// ErrEmptySequence for an empty sequence and with ErrDuplicateSequence when
// a structurally equal sequence is already registered; the collection is
// unchanged on failure.
func (b *Keybinds[A]) Register(seq key.Seq, action A) error {
	if seq.IsEmpty() {
		return ErrEmptySequence
	}
	for _, bind := range b.binds {
		if bind.Seq.Equals(seq) {
			return fmt.Errorf("%w: %q", ErrDuplicateSequence, seq.String())
		}
	}
	b.binds = append(b.binds, Keybind[A]{Seq: seq.Clone(), Action: action})
	return nil
}

// Bind parses a binding specification such as "Ctrl+x Ctrl+s" and registers
// it. Parse errors and duplicate registrations propagate to the caller.
func (b *Keybinds[A]) Bind(spec string, action A) error {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return err
	}
	return b.Register(seq, action)
}

// Find matches buffered inputs against the collection. It returns the first
// registered binding whose sequence equals the buffer exactly (nil if none),
// and whether the buffer is a strict prefix of at least one binding. Both
// answers are defined for any buffer: an empty buffer is a prefix of every
// binding and an exact match for none.
func (b *Keybinds[A]) Find(buffer []key.Input) (bind *Keybind[A], extendable bool) {
	for i := range b.binds {
		switch b.binds[i].Seq.MatchTo(buffer) {
		case key.Matched:
			if bind == nil {
				bind = &b.binds[i]
			}
		case key.Prefix:
			extendable = true
		}
	}
	return bind, extendable
}

// Len returns the number of registered bindings.
func (b *Keybinds[A]) Len() int {
	return len(b.binds)
}

// Binds returns a copy of the registered bindings in registration order,
// for enumeration and export.
func (b *Keybinds[A]) Binds() []Keybind[A] {
	out := make([]Keybind[A], len(b.binds))
	copy(out, b.binds)
	return out
}

// Clear removes all bindings. It does not touch any dispatcher buffer; see
// Dispatcher.ClearBinds for the coupled behavior.
func (b *Keybinds[A]) Clear() {
	b.binds = b.binds[:0]
}
