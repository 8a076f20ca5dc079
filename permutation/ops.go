// Package permutation - in-place structural primitives.
//
// These are the moves that neighborhood operators compose. Every primitive
// preserves the permutation property; index contracts are documented per
// method and assumed, not re-validated, in hot paths.
package permutation

import "github.com/katalvlaran/lvlsearch/rnd"

// SwapElements exchanges the elements at positions i and j.
func (p Permutation) SwapElements(i, j int) {
	p[i], p[j] = p[j], p[i]
}

// Reverse inverts the order of the closed range between positions i and j.
// The endpoints may be given in either order.
//
// Complexity: O(j-i).
func (p Permutation) Reverse(i, j int) {
	if i > j {
		i, j = j, i
	}
	for i < j {
		p[i], p[j] = p[j], p[i]
		i++
		j--
	}
}

// RemoveAndInsert removes the element at position from and reinserts it so
// that it occupies position to, shifting the elements in between by one.
//
// Complexity: O(|from-to|).
func (p Permutation) RemoveAndInsert(from, to int) {
	if from == to {
		return
	}
	var v = p[from]
	var i int
	if from < to {
		for i = from; i < to; i++ {
			p[i] = p[i+1]
		}
	} else {
		for i = from; i > to; i-- {
			p[i] = p[i-1]
		}
	}
	p[to] = v
}

// RemoveAndInsertBlock removes the size-element block starting at position
// from and reinserts it so that it starts at position to. Requires the block
// to fit at both locations: 0 <= from, 0 <= to, from+size <= len(p),
// to+size <= len(p).
//
// Complexity: O(size + |from-to|), with a size-element scratch buffer.
func (p Permutation) RemoveAndInsertBlock(from, size, to int) {
	if from == to || size == 0 {
		return
	}
	var block = make([]int, size)
	copy(block, p[from:from+size])
	var i int
	if from < to {
		// Shift the gap elements left, then place the block at to.
		for i = from; i < to; i++ {
			p[i] = p[i+size]
		}
	} else {
		// Shift the gap elements right, then place the block at to.
		for i = from + size - 1; i >= to+size; i-- {
			p[i] = p[i-size]
		}
	}
	copy(p[to:to+size], block)
}

// SwapBlocks exchanges the (possibly unequal length) blocks [a..b] and
// [c..d], keeping the elements between them in order. Requires a <= b < c <= d
// within range.
//
// Complexity: O(d-a), with a (d-a+1)-element scratch buffer.
func (p Permutation) SwapBlocks(a, b, c, d int) {
	var scratch = make([]int, 0, d-a+1)
	scratch = append(scratch, p[c:d+1]...)
	scratch = append(scratch, p[b+1:c]...)
	scratch = append(scratch, p[a:b+1]...)
	copy(p[a:d+1], scratch)
}

// Rotate performs a left rotation by r positions: the element at position r
// moves to position 0. Negative or oversized r is reduced modulo the length.
//
// Complexity: O(n), with an n-element scratch buffer.
func (p Permutation) Rotate(r int) {
	var n = len(p)
	if n < 2 {
		return
	}
	r %= n
	if r < 0 {
		r += n
	}
	if r == 0 {
		return
	}
	var scratch = make([]int, n)
	copy(scratch, p)
	var i int
	for i = 0; i < n; i++ {
		p[i] = scratch[(i+r)%n]
	}
}

// ScrambleRange randomizes the order of the closed range between positions i
// and j using s, guaranteeing the range changes whenever it holds at least
// two elements. The endpoints may be given in either order.
//
// Complexity: O(j-i) expected.
func (p Permutation) ScrambleRange(i, j int, s *rnd.Stream) {
	if i > j {
		i, j = j, i
	}
	if j-i < 1 {
		return
	}
	var before = make([]int, j-i+1)
	copy(before, p[i:j+1])
	s.Shuffle(p[i : j+1])
	var k int
	for k = i; k <= j; k++ {
		if p[k] != before[k-i] {
			return
		}
	}
	// Shuffle landed on the original order; force a change with one swap of
	// two distinct positions in the range.
	var a, b = s.Pair(j - i + 1)
	p.SwapElements(i+a, i+b)
}
