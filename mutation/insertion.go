// Package mutation - insertion operator.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Insertion removes the element at one random position and reinserts it at
// another. Order matters: moving forward shifts a different block than
// moving backward, so the option set has n(n-1) ordered outcomes. The
// window-limited variant bounds the move distance.
//
// Insertion is undoable and iterable.
type Insertion struct {
	s      *rnd.Stream
	window int
	i, j   int
}

// NewInsertion returns an unconstrained insertion operator. A nil stream
// selects the deterministic default stream.
func NewInsertion(s *rnd.Stream) *Insertion {
	return &Insertion{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedInsertion returns an insertion operator whose removal and
// reinsertion points always satisfy |i-j| <= window.
func NewWindowLimitedInsertion(window int, s *rnd.Stream) (*Insertion, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &Insertion{s: streamOrDefault(s), window: window}, nil
}

// Mutate moves one random element of p to another random position.
func (m *Insertion) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.i, m.j = pairIdx(m.s, p.Length(), m.window)
	p.RemoveAndInsert(m.i, m.j)
}

// Undo reverts the most recent Mutate by moving the element back: the
// inverse of an insertion is the insertion with swapped indexes.
func (m *Insertion) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.RemoveAndInsert(m.j, m.i)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *Insertion) Split() Operator {
	return &Insertion{s: m.s.Split(), window: m.window}
}

// Iterator enumerates all distinct insertion neighbors of p within the
// window. Moves of distance one duplicate each other (moving an element one
// step left equals moving its neighbor one step right), so the iterator
// visits (n-1)^2 distinct neighbors for an unconstrained window.
func (m *Insertion) Iterator(p permutation.Permutation) Iterator {
	return newInsertionIterator(p, m.window)
}
