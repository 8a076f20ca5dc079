// Package mutation - block move operator.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// BlockMove relocates a random contiguous block of elements to an earlier
// random position. The move is drawn as a sorted index triple i < j <= k:
// the block [j..k] is removed and reinserted starting at position i, giving
// n(n-1)(n+1)/6 possible outcomes. The window-limited variant bounds the
// overall span k-i.
//
// BlockMove is undoable.
type BlockMove struct {
	s       *rnd.Stream
	window  int
	i, j, k int
}

// NewBlockMove returns an unconstrained block move operator. A nil stream
// selects the deterministic default stream.
func NewBlockMove(s *rnd.Stream) *BlockMove {
	return &BlockMove{s: streamOrDefault(s), window: unlimited}
}

// NewWindowLimitedBlockMove returns a block move operator whose index triple
// always satisfies k-i <= window.
func NewWindowLimitedBlockMove(window int, s *rnd.Stream) (*BlockMove, error) {
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &BlockMove{s: streamOrDefault(s), window: window}, nil
}

// Mutate relocates a random block of p.
func (m *BlockMove) Mutate(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	m.i, m.j, m.k = tripleIdx(m.s, p.Length(), m.window)
	p.RemoveAndInsertBlock(m.j, m.k-m.j+1, m.i)
}

// Undo reverts the most recent Mutate. After the move, the displaced
// elements that preceded the block occupy [i+k-j+1 .. k]; moving them back
// to position i restores the original arrangement.
func (m *BlockMove) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	p.RemoveAndInsertBlock(m.i+m.k-m.j+1, m.j-m.i, m.i)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *BlockMove) Split() Operator {
	return &BlockMove{s: m.s.Split(), window: m.window}
}
