// Package crossover - uniform order-based crossover (UOBX).
package crossover

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// defaultFixRate is the default probability that a position is fixed in UOBX.
const defaultFixRate = 1.0 / 3.0

// UOBX is uniform order-based crossover. A shared random mask fixes each
// position with probability u; every non-fixed position keeps the multiset
// of values it had, reordered into the relative order the other parent uses.
//
// At the extremes the operator degenerates: u near 1 fixes everything (the
// children equal the parents), u near 0 fixes nothing (the children swap).
type UOBX struct {
	s *rnd.Stream
	u float64
}

// NewUOBX returns a UOBX operator with the default fix rate. A nil stream
// selects the deterministic default stream.
func NewUOBX(s *rnd.Stream) *UOBX {
	if s == nil {
		s = rnd.New(0)
	}
	return &UOBX{s: s, u: defaultFixRate}
}

// NewUOBXWithRate returns a UOBX operator with fix rate u, which must be
// strictly between 0 and 1.
func NewUOBXWithRate(u float64, s *rnd.Stream) (*UOBX, error) {
	if u <= 0 || u >= 1 {
		return nil, ErrRateOutOfRange
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &UOBX{s: s, u: u}, nil
}

// Cross recombines p1 and p2 under a shared random fix mask.
func (c *UOBX) Cross(p1, p2 permutation.Permutation) error {
	var n = p1.Length()
	if n != p2.Length() {
		return ErrLengthMismatch
	}
	if n < 2 {
		return nil
	}
	var fixed = make([]bool, n)
	var k int
	for k = 0; k < n; k++ {
		fixed[k] = c.s.Float64() < c.u
	}
	var raw1 = p1.Copy()
	var raw2 = p2.Copy()
	reorderFree(p1, raw2, fixed)
	reorderFree(p2, raw1, fixed)
	return nil
}

// Split returns an identically configured operator with an independent
// random stream.
func (c *UOBX) Split() Operator {
	return &UOBX{s: c.s.Split(), u: c.u}
}

// reorderFree rewrites the non-fixed positions of child with the values they
// collectively hold, in the relative order those values have in other.
func reorderFree(child, other permutation.Permutation, fixed []bool) {
	var n = len(child)
	var free = make([]bool, n)
	var k int
	for k = 0; k < n; k++ {
		if !fixed[k] {
			free[child[k]] = true
		}
	}
	var idx = 0
	for k = 0; k < n; k++ {
		var v = other[k]
		if !free[v] {
			continue
		}
		for fixed[idx] {
			idx++
		}
		child[idx] = v
		idx++
	}
}
