// Package mutation - rotation operator.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Rotation cyclically rotates the whole candidate left by a uniform random
// amount r in [1, n-1], so the identity rotation never occurs and the
// neighborhood has n-1 distinct neighbors.
//
// Rotation is undoable and iterable.
type Rotation struct {
	s *rnd.Stream
	r int
}

// NewRotation returns a rotation operator. A nil stream selects the
// deterministic default stream.
func NewRotation(s *rnd.Stream) *Rotation {
	return &Rotation{s: streamOrDefault(s)}
}

// Mutate rotates p left by a random non-zero amount.
func (m *Rotation) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.r = 1 + m.s.Index(p.Length()-1)
	p.Rotate(m.r)
}

// Undo reverts the most recent Mutate by rotating the same amount back.
func (m *Rotation) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.Rotate(-m.r)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *Rotation) Split() Operator {
	return &Rotation{s: m.s.Split()}
}

// Iterator enumerates the n-1 rotation neighbors of p by successive
// single-step rotations.
func (m *Rotation) Iterator(p permutation.Permutation) Iterator {
	return newRotationIterator(p)
}
