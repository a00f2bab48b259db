package synth

import "strconv"

// Namer produces an unbounded sequence of unique parameter names. One Namer
// is created per synthesized member and discarded afterwards; the counter is
// never shared across members.
type Namer struct {
	index int
}

// NewNamer creates a fresh name generator.
func NewNamer() *Namer {
	return &Namer{}
}

// Next returns the next unique name in the sequence: _0, _1, _2, ...
func (n *Namer) Next() string {
	name := "_" + strconv.Itoa(n.index)
	n.index++
	return name
}
