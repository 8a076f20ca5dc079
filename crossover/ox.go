// Package crossover - order crossover (OX) and non-wrapping order crossover
// (NWOX).
//
// Both operators share a random cross segment [i..j]: each child keeps its
// own segment and receives every remaining element in the relative order it
// has in the other parent. OX fills positions cyclically starting after the
// segment; NWOX fills left to right, skipping over the segment, so elements
// stay closer to their original absolute positions.
package crossover

import (
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/rnd"
)

// OX is order crossover.
type OX struct {
	s *rnd.Stream
}

// NewOX returns an order crossover operator. A nil stream selects the
// deterministic default stream.
func NewOX(s *rnd.Stream) *OX {
	if s == nil {
		s = rnd.New(0)
	}
	return &OX{s: s}
}

// Cross recombines p1 and p2 with a shared random segment, wrapping fill.
func (c *OX) Cross(p1, p2 permutation.Permutation) error {
	var n = p1.Length()
	if n != p2.Length() {
		return ErrLengthMismatch
	}
	if n < 2 {
		return nil
	}
	var i = c.s.Index(n)
	var j = c.s.Index(n)
	if i > j {
		i, j = j, i
	}
	var raw1 = p1.Copy()
	var raw2 = p2.Copy()
	fillWrapping(p1, raw2, i, j)
	fillWrapping(p2, raw1, i, j)
	return nil
}

// Split returns an identically configured operator with an independent
// random stream.
func (c *OX) Split() Operator {
	return &OX{s: c.s.Split()}
}

// fillWrapping rewrites child outside [i..j] with the non-segment elements
// of other, reading and writing cyclically from position j+1.
func fillWrapping(child, other permutation.Permutation, i, j int) {
	var n = len(child)
	var inSeg = make([]bool, n)
	var k int
	for k = i; k <= j; k++ {
		inSeg[child[k]] = true
	}
	var idx = (j + 1) % n
	var src = (j + 1) % n
	var remaining = n - (j - i + 1)
	for remaining > 0 {
		var v = other[src]
		src = (src + 1) % n
		if inSeg[v] {
			continue
		}
		child[idx] = v
		idx = (idx + 1) % n
		remaining--
	}
}

// NWOX is non-wrapping order crossover.
type NWOX struct {
	s *rnd.Stream
}

// NewNWOX returns a non-wrapping order crossover operator. A nil stream
// selects the deterministic default stream.
func NewNWOX(s *rnd.Stream) *NWOX {
	if s == nil {
		s = rnd.New(0)
	}
	return &NWOX{s: s}
}

// Cross recombines p1 and p2 with a shared random segment, non-wrapping fill.
func (c *NWOX) Cross(p1, p2 permutation.Permutation) error {
	var n = p1.Length()
	if n != p2.Length() {
		return ErrLengthMismatch
	}
	if n < 2 {
		return nil
	}
	var i = c.s.Index(n)
	var j = c.s.Index(n)
	if i > j {
		i, j = j, i
	}
	var raw1 = p1.Copy()
	var raw2 = p2.Copy()
	fillNonWrapping(p1, raw2, i, j)
	fillNonWrapping(p2, raw1, i, j)
	return nil
}

// Split returns an identically configured operator with an independent
// random stream.
func (c *NWOX) Split() Operator {
	return &NWOX{s: c.s.Split()}
}

// fillNonWrapping rewrites child outside [i..j] with the non-segment
// elements of other, left to right, jumping over the segment.
func fillNonWrapping(child, other permutation.Permutation, i, j int) {
	var n = len(child)
	var inSeg = make([]bool, n)
	var k int
	for k = i; k <= j; k++ {
		inSeg[child[k]] = true
	}
	var idx = 0
	for k = 0; k < n; k++ {
		var v = other[k]
		if inSeg[v] {
			continue
		}
		if idx == i {
			idx = j + 1
		}
		if idx >= n {
			return
		}
		child[idx] = v
		idx++
	}
}
