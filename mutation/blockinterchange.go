// Package mutation - block interchange operator.
package mutation

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// BlockInterchange exchanges two random non-overlapping contiguous blocks,
// possibly of different lengths, keeping the elements between them in order.
// The blocks are [a..b] and [c..d] with a <= b < c <= d, drawn as two sorted
// pairs (equality allowed within each pair, so single-element blocks occur).
//
// BlockInterchange is undoable.
type BlockInterchange struct {
	s          *rnd.Stream
	a, b, c, d int
}

// NewBlockInterchange returns a block interchange operator. A nil stream
// selects the deterministic default stream.
func NewBlockInterchange(s *rnd.Stream) *BlockInterchange {
	return &BlockInterchange{s: streamOrDefault(s)}
}

// Mutate exchanges two random blocks of p.
//
// The pairs are drawn from [0,n-2] and [1,n-1] and redrawn until the blocks
// are disjoint (b < c). Every admissible quadruple remains reachable, and
// for n==2 the first draw always succeeds.
func (m *BlockInterchange) Mutate(p permutation.Permutation) {
	var n = p.Length()
	if n < 2 {
		return
	}
	for {
		m.a, m.b = sortedPairIn(m.s, 0, n-2)
		m.c, m.d = sortedPairIn(m.s, 1, n-1)
		if m.b < m.c {
			break
		}
	}
	p.SwapBlocks(m.a, m.b, m.c, m.d)
}

// Undo reverts the most recent Mutate. After the exchange the second block
// starts at a and the first block ends at d; swapping those back restores
// the original. The intervening elements were never reordered.
func (m *BlockInterchange) Undo(p permutation.Permutation) {
	if p.Length() < 2 {
		return
	}
	var l1 = m.b - m.a + 1
	var l2 = m.d - m.c + 1
	p.SwapBlocks(m.a, m.a+l2-1, m.d-l1+1, m.d)
}

// Split returns an identically configured operator with an independent
// random stream.
func (m *BlockInterchange) Split() Operator {
	return &BlockInterchange{s: m.s.Split()}
}
