package keybind

import (
	"time"

	"github.com/dshills/keybind/key"
)

// DefaultTimeout is how long the dispatcher waits for the next input of an
// ongoing sequence before resolving it via CheckTimeout.
const DefaultTimeout = time.Second

// OutcomeKind classifies the result of feeding an input or a timeout tick to
// a dispatcher.
type OutcomeKind uint8

const (
	// OutcomeNoOp means nothing changed: the dispatcher was idle, or a
	// pending sequence has not timed out yet.
	OutcomeNoOp OutcomeKind = iota

	// OutcomeIgnored means the input carried KeyIgnored and was discarded
	// without touching any state.
	OutcomeIgnored

	// OutcomePending means the input was buffered and the dispatcher is
	// waiting for more input to resolve the sequence.
	OutcomePending

	// OutcomeFired means a binding completed; the Outcome carries its
	// action.
	OutcomeFired

	// OutcomeCleared means the buffer matched nothing and was discarded.
	OutcomeCleared
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNoOp:
		return "NoOp"
	case OutcomeIgnored:
		return "Ignored"
	case OutcomePending:
		return "Pending"
	case OutcomeFired:
		return "Fired"
	case OutcomeCleared:
		return "Cleared"
	default:
		return "Outcome(?)"
	}
}

// Outcome is a dispatch decision. Action is meaningful only when Kind is
// OutcomeFired.
type Outcome[A any] struct {
	Kind   OutcomeKind
	Action A
}

// RebindPolicy decides what happens to an in-progress buffer when the
// dispatcher's bindings change underneath it.
type RebindPolicy uint8

const (
	// ResetOngoing discards the in-progress buffer on any binding change.
	// This is the default: a reconfigured table has no obligation to honor
	// half-typed sequences from the old one.
	ResetOngoing RebindPolicy = iota

	// KeepOngoing leaves the in-progress buffer alone; the next Feed or
	// CheckTimeout re-evaluates it against the new bindings.
	KeepOngoing
)

// Dispatcher consumes key inputs one at a time and decides when a binding
// has been completed. It owns its binding table and an ephemeral buffer of
// in-progress inputs.
//
// The dispatcher performs no internal timing: the embedding event loop feeds
// inputs via Feed and drives timeout resolution by calling CheckTimeout on a
// cadence of its choosing, passing the current time to both. Outcomes are a
// deterministic function of the call sequence and its timestamps.
//
// A dispatcher is not safe for concurrent use; it is designed to be owned by
// exactly one consumer processing one logical input stream.
type Dispatcher[A any] struct {
	binds     *Keybinds[A]
	ongoing   []key.Input
	lastInput time.Time
	timeout   time.Duration
	rebind    RebindPolicy
}

// NewDispatcher creates a dispatcher owning the given bindings with the
// default timeout. A nil binds is treated as empty.
func NewDispatcher[A any](binds *Keybinds[A]) *Dispatcher[A] {
	if binds == nil {
		binds = NewKeybinds[A]()
	}
	return &Dispatcher[A]{
		binds:   binds,
		timeout: DefaultTimeout,
	}
}

// NewEmptyDispatcher creates a dispatcher with no bindings. Bindings are
// added later with Bind or Register.
func NewEmptyDispatcher[A any]() *Dispatcher[A] {
	return NewDispatcher[A](nil)
}

// Feed consumes one key input observed at the given time and returns the
// dispatch decision:
//
//   - the buffer extended with the input matches a binding exactly and is
//     not a prefix of a longer one: the binding fires (OutcomeFired);
//   - the buffer is a prefix of at least one binding: the dispatcher keeps
//     waiting (OutcomePending), even when the buffer is also an exact match
//     for a shorter binding — only CheckTimeout resolves that ambiguity in
//     the shorter binding's favor;
//   - the buffer matches nothing: it is discarded (OutcomeCleared). The
//     input that caused the dead end is discarded with it, not reinterpreted
//     as the start of a new sequence.
//
// Inputs with KeyIgnored return OutcomeIgnored and leave buffer and
// timestamp untouched, as if the event never occurred.
func (d *Dispatcher[A]) Feed(in key.Input, now time.Time) Outcome[A] {
	if in.Key == key.KeyIgnored {
		return Outcome[A]{Kind: OutcomeIgnored}
	}

	d.ongoing = append(d.ongoing, in)
	d.lastInput = now

	bind, extendable := d.binds.Find(d.ongoing)
	switch {
	case bind != nil && !extendable:
		action := bind.Action
		d.Reset()
		return Outcome[A]{Kind: OutcomeFired, Action: action}
	case extendable:
		return Outcome[A]{Kind: OutcomePending}
	default:
		d.Reset()
		return Outcome[A]{Kind: OutcomeCleared}
	}
}

// CheckTimeout resolves an ongoing sequence that has seen no input for the
// configured timeout. If the buffer is an exact match for a binding (the
// ambiguous-prefix case), that binding fires; otherwise the buffer is
// cleared. Returns OutcomeNoOp when idle or not yet timed out.
func (d *Dispatcher[A]) CheckTimeout(now time.Time) Outcome[A] {
	if len(d.ongoing) == 0 {
		return Outcome[A]{Kind: OutcomeNoOp}
	}
	if now.Sub(d.lastInput) < d.timeout {
		return Outcome[A]{Kind: OutcomeNoOp}
	}

	bind, _ := d.binds.Find(d.ongoing)
	d.Reset()
	if bind != nil {
		return Outcome[A]{Kind: OutcomeFired, Action: bind.Action}
	}
	return Outcome[A]{Kind: OutcomeCleared}
}

// Reset unconditionally discards the in-progress buffer, for explicit
// cancellation such as focus loss.
func (d *Dispatcher[A]) Reset() {
	d.ongoing = d.ongoing[:0]
	d.lastInput = time.Time{}
}

// SetTimeout sets the quiet period after which CheckTimeout resolves an
// ongoing sequence.
func (d *Dispatcher[A]) SetTimeout(timeout time.Duration) {
	d.timeout = timeout
}

// Timeout returns the configured timeout.
func (d *Dispatcher[A]) Timeout() time.Duration {
	return d.timeout
}

// SetRebindPolicy configures whether binding changes discard an in-progress
// buffer. The default is ResetOngoing.
func (d *Dispatcher[A]) SetRebindPolicy(p RebindPolicy) {
	d.rebind = p
}

// IsOngoing returns true while a partially typed sequence is buffered.
func (d *Dispatcher[A]) IsOngoing() bool {
	return len(d.ongoing) > 0
}

// Ongoing returns a copy of the in-progress inputs, for display in a status
// line or similar.
func (d *Dispatcher[A]) Ongoing() key.Seq {
	return key.NewSeq(d.ongoing...).Clone()
}

// Keybinds returns the dispatcher's binding table for enumeration. Mutate
// the table through the dispatcher so the rebind policy applies.
func (d *Dispatcher[A]) Keybinds() *Keybinds[A] {
	return d.binds
}

// Register adds a binding to the owned table, applying the rebind policy to
// the in-progress buffer.
func (d *Dispatcher[A]) Register(seq key.Seq, action A) error {
	if err := d.binds.Register(seq, action); err != nil {
		return err
	}
	d.applyRebind()
	return nil
}

// Bind parses a binding specification and registers it, applying the rebind
// policy to the in-progress buffer.
func (d *Dispatcher[A]) Bind(spec string, action A) error {
	if err := d.binds.Bind(spec, action); err != nil {
		return err
	}
	d.applyRebind()
	return nil
}

// ClearBinds removes all bindings, applying the rebind policy to the
// in-progress buffer.
func (d *Dispatcher[A]) ClearBinds() {
	d.binds.Clear()
	d.applyRebind()
}

func (d *Dispatcher[A]) applyRebind() {
	if d.rebind == ResetOngoing {
		d.Reset()
	}
}
