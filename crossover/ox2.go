// Package crossover - order crossover 2 (OX2).
package crossover

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// defaultSelectRate is the default probability that a position is selected
// by the OX2 mask.
const defaultSelectRate = 0.5

// OX2 is order crossover 2. A shared random mask selects positions; for each
// child, the elements the other parent holds at the selected positions are
// rewritten, in the other parent's order, into the positions they occupy in
// this child.
//
// At the extremes the operator degenerates: u near 0 selects nothing (the
// children equal the parents), u near 1 selects everything (the children
// swap).
type OX2 struct {
	s *rnd.Stream
	u float64
}

// NewOX2 returns an OX2 operator with the default selection rate. A nil
// stream selects the deterministic default stream.
func NewOX2(s *rnd.Stream) *OX2 {
	if s == nil {
		s = rnd.New(0)
	}
	return &OX2{s: s, u: defaultSelectRate}
}

// NewOX2WithRate returns an OX2 operator with selection rate u, which must
// be strictly between 0 and 1.
func NewOX2WithRate(u float64, s *rnd.Stream) (*OX2, error) {
	if u <= 0 || u >= 1 {
		return nil, ErrRateOutOfRange
	}
	if s == nil {
		s = rnd.New(0)
	}
	return &OX2{s: s, u: u}, nil
}

// Cross recombines p1 and p2 under a shared random selection mask.
func (c *OX2) Cross(p1, p2 permutation.Permutation) error {
	var n = p1.Length()
	if n != p2.Length() {
		return ErrLengthMismatch
	}
	if n < 2 {
		return nil
	}
	var mask = make([]bool, n)
	var k int
	for k = 0; k < n; k++ {
		mask[k] = c.s.Float64() < c.u
	}
	var raw1 = p1.Copy()
	var raw2 = p2.Copy()
	rewriteSelected(p1, raw2, mask)
	rewriteSelected(p2, raw1, mask)
	return nil
}

// Split returns an identically configured operator with an independent
// random stream.
func (c *OX2) Split() Operator {
	return &OX2{s: c.s.Split(), u: c.u}
}

// rewriteSelected rewrites, in mask order, the elements other holds at the
// selected positions into the positions those elements occupy in child.
func rewriteSelected(child, other permutation.Permutation, mask []bool) {
	var n = len(child)
	var member = make([]bool, n)
	var remaining = 0
	var k int
	for k = 0; k < n; k++ {
		if mask[k] {
			member[other[k]] = true
			remaining++
		}
	}
	var src = 0
	for k = 0; k < n && remaining > 0; k++ {
		if !member[child[k]] {
			continue
		}
		for !mask[src] {
			src++
		}
		child[k] = other[src]
		src++
		remaining--
	}
}
