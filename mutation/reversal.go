// Package mutation - reversal operator.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Reversal inverts the order of a random sub-range. The window-limited
// variant bounds the distance between the range endpoints.
//
// Reversal is undoable and iterable; its neighborhood has n(n-1)/2 distinct
// neighbors (each endpoint pair).
type Reversal struct {
	s      *rnd.Stream
	window int
	i, j   int
}

// NewReversal returns an unconstrained reversal operator. A nil stream
// selects the deterministic default stream.
func NewReversal(s *rnd.Stream) *Reversal {
	return &Reversal{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedReversal returns a reversal operator whose endpoints
// always satisfy |i-j| <= window.
func NewWindowLimitedReversal(window int, s *rnd.Stream) (*Reversal, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &Reversal{s: streamOrDefault(s), window: window}, nil
}

// Mutate reverses a random sub-range of p.
func (m *Reversal) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.i, m.j = pairIdx(m.s, p.Length(), m.window)
	p.Reverse(m.i, m.j)
}

// Undo reverts the most recent Mutate. Reversals are self-inverse.
func (m *Reversal) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.Reverse(m.i, m.j)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *Reversal) Split() Operator {
	return &Reversal{s: m.s.Split(), window: m.window}
}

// Iterator enumerates all distinct reversal neighbors of p within the window.
func (m *Reversal) Iterator(p permutation.Permutation) Iterator {
	return newPairwiseIterator(p, m.window, permutation.Permutation.Reverse)
}
