// Package permutation - the Permutation type and its constructors.
//
// Goals:
//   - Safety: constructors validate or generate valid permutations; structural
//     primitives preserve the permutation property by construction.
//   - Determinism: randomized constructors take an explicit *rnd.Stream.
//   - Performance: primitives are O(n) worst case with no hidden allocations
//     beyond documented scratch buffers.
package permutation

import (
	"errors"

	"github.com/katalvlaran/lvlsearch/rnd"
)

// ErrInvalidPermutation is returned when a slice does not contain each of
// 0..n-1 exactly once.
var ErrInvalidPermutation = errors.New("permutation: values are not a permutation of 0..n-1")

// Permutation is a sequence of the integers 0..n-1, each exactly once.
// The zero-length permutation is valid.
type Permutation []int

// New returns the identity permutation of length n. Requires n >= 0.
func New(n int) Permutation {
	var p = make(Permutation, n)
	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	return p
}

// Random returns a uniformly random permutation of length n drawn from s.
func Random(n int, s *rnd.Stream) Permutation {
	var p = New(n)
	s.Shuffle(p)
	return p
}

// From copies values into a new Permutation after validating them.
func From(values []int) (Permutation, error) {
	var p = make(Permutation, len(values))
	copy(p, values)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Length returns the number of elements.
func (p Permutation) Length() int { return len(p) }

// Copy returns an independent deep copy.
func (p Permutation) Copy() Permutation {
	var q = make(Permutation, len(p))
	copy(q, p)
	return q
}

// Equal reports whether p and q have identical length and element order.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	var i int
	for i = range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Validate checks the permutation property.
func (p Permutation) Validate() error {
	var seen = make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return ErrInvalidPermutation
		}
		seen[v] = true
	}
	return nil
}

// Inverse returns the inverse mapping: for every i, Inverse()[p[i]] == i.
func (p Permutation) Inverse() []int {
	var inv = make([]int, len(p))
	var i int
	for i = range p {
		inv[p[i]] = i
	}
	return inv
}
