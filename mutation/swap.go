// Package mutation - swap and adjacent swap operators.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// Swap exchanges the elements at two random distinct positions. The
// window-limited variant bounds how far apart those positions may be.
//
// Swap is undoable and iterable; its neighborhood has n(n-1)/2 distinct
// neighbors (each unordered position pair).
type Swap struct {
	s      *rnd.Stream
	window int
	i, j   int
}

// NewSwap returns an unconstrained swap operator. A nil stream selects the
// deterministic default stream.
func NewSwap(s *rnd.Stream) *Swap {
	return &Swap{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedSwap returns a swap operator whose two positions always
// satisfy |i-j| <= window. A window covering the whole index range behaves
// exactly like NewSwap.
func NewWindowLimitedSwap(window int, s *rnd.Stream) (*Swap, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &Swap{s: streamOrDefault(s), window: window}, nil
}

// Mutate swaps two random distinct elements of p.
func (m *Swap) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.i, m.j = pairIdx(m.s, p.Length(), m.window)
	p.SwapElements(m.i, m.j)
}

// Undo reverts the most recent Mutate. Swaps are self-inverse.
func (m *Swap) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.SwapElements(m.i, m.j)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *Swap) Split() Operator {
	return &Swap{s: m.s.Split(), window: m.window}
}

// Iterator enumerates all distinct swap neighbors of p within the window.
func (m *Swap) Iterator(p permutation.Permutation) Iterator {
	return newPairwiseIterator(p, m.window, permutation.Permutation.SwapElements)
}

// AdjacentSwap exchanges a random pair of neighboring elements. It is the
// smallest permutation move: n-1 distinct neighbors.
//
// AdjacentSwap is undoable and iterable.
type AdjacentSwap struct {
	s *rnd.Stream
	i int
}

// NewAdjacentSwap returns an adjacent swap operator. A nil stream selects
// the deterministic default stream.
func NewAdjacentSwap(s *rnd.Stream) *AdjacentSwap {
	return &AdjacentSwap{s: streamOrDefault(s)}
}

// Mutate swaps a random adjacent element pair of p.
func (m *AdjacentSwap) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.i = m.s.Index(p.Length() - 1)
	p.SwapElements(m.i, m.i+1)
}

// Undo reverts the most recent Mutate.
func (m *AdjacentSwap) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.SwapElements(m.i, m.i+1)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *AdjacentSwap) Split() Operator {
	return &AdjacentSwap{s: m.s.Split()}
}

// Iterator enumerates the n-1 adjacent swap neighbors of p. The adjacent
// neighborhood is the window-1 swap neighborhood.
func (m *AdjacentSwap) Iterator(p permutation.Permutation) Iterator {
	return newPairwiseIterator(p, 1, permutation.Permutation.SwapElements)
}
