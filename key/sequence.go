package key

import "strings"

// MatchResult is the three-way outcome of matching buffered inputs against a
// sequence.
type MatchResult uint8

const (
	// Unmatch means the inputs can never complete the sequence.
	Unmatch MatchResult = iota

	// Prefix means the inputs are a strict prefix of the sequence; matching
	// is still ongoing.
	Prefix

	// Matched means the inputs equal the sequence exactly.
	Matched
)

// String returns a human-readable name for the match result.
func (m MatchResult) String() string {
	switch m {
	case Unmatch:
		return "Unmatch"
	case Prefix:
		return "Prefix"
	case Matched:
		return "Matched"
	default:
		return "MatchResult(?)"
	}
}

// Seq is an ordered sequence of key inputs forming a binding, such as
// "Ctrl+x Ctrl+s" or the vim-style "g g". Order is significant; two
// sequences are equal iff they have the same length and pairwise-equal
// elements. A registered sequence is never empty (the parser and the binding
// table both enforce that), but the methods below are defined for empty
// sequences too.
type Seq struct {
	// Inputs contains the key inputs in order. Most bindings are one or two
	// inputs long.
	Inputs []Input
}

// NewSeq creates a sequence from the given inputs.
func NewSeq(inputs ...Input) Seq {
	return Seq{Inputs: inputs}
}

// Len returns the number of inputs in the sequence.
func (s Seq) Len() int {
	return len(s.Inputs)
}

// IsEmpty returns true if the sequence has no inputs.
func (s Seq) IsEmpty() bool {
	return len(s.Inputs) == 0
}

// Equals returns true if two sequences are identical.
func (s Seq) Equals(other Seq) bool {
	if len(s.Inputs) != len(other.Inputs) {
		return false
	}
	for i, in := range s.Inputs {
		if in != other.Inputs[i] {
			return false
		}
	}
	return true
}

// MatchTo matches buffered inputs against the sequence. An input with
// KeyUnidentified never equals any element, so a buffer containing one can
// only report Unmatch. An empty buffer is a prefix of any non-empty
// sequence.
func (s Seq) MatchTo(inputs []Input) MatchResult {
	for i, in := range inputs {
		if i >= len(s.Inputs) {
			return Unmatch
		}
		if in.Key == KeyUnidentified || in != s.Inputs[i] {
			return Unmatch
		}
	}
	if len(inputs) == len(s.Inputs) {
		return Matched
	}
	return Prefix
}

// HasPrefix returns true if this sequence starts with the given prefix.
func (s Seq) HasPrefix(prefix Seq) bool {
	if len(prefix.Inputs) > len(s.Inputs) {
		return false
	}
	for i, in := range prefix.Inputs {
		if in != s.Inputs[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence with its own backing array.
func (s Seq) Clone() Seq {
	inputs := make([]Input, len(s.Inputs))
	copy(inputs, s.Inputs)
	return Seq{Inputs: inputs}
}

// String returns the canonical text for the sequence: inputs joined with
// single spaces, such as "Ctrl+x Ctrl+s". The output re-parses to an equal
// Seq. An empty sequence renders as an empty string.
func (s Seq) String() string {
	if len(s.Inputs) == 0 {
		return ""
	}
	parts := make([]string, len(s.Inputs))
	for i, in := range s.Inputs {
		parts[i] = in.String()
	}
	return strings.Join(parts, " ")
}
