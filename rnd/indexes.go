// Package rnd - uniform index samplers for neighborhood operators.
//
// Each sampler draws uniformly over its admissible option set:
//   - Pair: all n(n-1) ordered pairs with i != j.
//   - Triple: all n(n-1)(n+1)/6 sorted triples with i < j <= k.
//   - WindowedPair / WindowedTriple: the subsets whose index span does not
//     exceed the window, again uniform over the constrained set.
//
// Contracts:
//   - Callers guarantee n >= 2 (operators no-op on shorter candidates first).
//   - Windows are validated at operator construction; samplers assume w >= 1.
//   - A window covering the whole index range degrades to the unconstrained
//     sampler, bit-for-bit.
package rnd

// Index returns a uniform index in [0,n).
//
// Complexity: O(1).
func (s *Stream) Index(n int) int { return s.r.Intn(n) }

// Pair returns an ordered pair (i,j) with i != j, uniform over all n(n-1)
// outcomes. Order carries meaning for asymmetric operators such as insertion.
//
// Complexity: O(1).
func (s *Stream) Pair(n int) (int, int) {
	var (
		i int
		j int
	)
	i = s.r.Intn(n)
	j = s.r.Intn(n - 1)
	if j >= i {
		j++
	}
	return i, j
}

// WindowedPair returns an ordered pair (i,j), i != j, with |i-j| <= w,
// uniform over the constrained set. If w >= n-1 it is equivalent to Pair.
//
// The draw maps one uniform variate onto the set of unordered in-window
// pairs grouped by distance d=1..w (n-d pairs at distance d), then
// randomizes the order. No rejection loop, so cost is independent of w/n.
//
// Complexity: O(w) worst case for the distance scan.
func (s *Stream) WindowedPair(n, w int) (int, int) {
	if w >= n-1 {
		return s.Pair(n)
	}
	var (
		total int
		t     int
		d     int
		i     int
		j     int
	)
	total = n*w - w*(w+1)/2
	t = s.r.Intn(total)
	d = 1
	for t >= n-d {
		t -= n - d
		d++
	}
	i = t
	j = i + d
	if s.r.Intn(2) == 0 {
		return j, i
	}
	return i, j
}

// Triple returns a sorted triple (i,j,k) with i < j <= k, uniform over all
// n(n-1)(n+1)/6 outcomes.
//
// Sorted triples with j <= k over [0,n) biject with strict triples a < b < c
// over [0,n+1) via (i,j,k) -> (i,j,k+1), so we draw three distinct values
// from the extended range and sort.
//
// Complexity: O(1).
func (s *Stream) Triple(n int) (int, int, int) {
	var (
		a  int
		b  int
		c  int
		lo int
		hi int
	)
	a = s.r.Intn(n + 1)
	b = s.r.Intn(n)
	if b >= a {
		b++
	}
	lo, hi = a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	c = s.r.Intn(n - 1)
	if c >= lo {
		c++
	}
	if c >= hi {
		c++
	}
	// Sort the three distinct values.
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return a, b, c - 1
}

// WindowedTriple returns a sorted triple (i,j,k), i < j <= k, with k-i <= w,
// uniform over the constrained set. If w >= n-1 it is equivalent to Triple.
//
// Under the same bijection as Triple, the window constraint becomes a span
// bound c-a <= w+1 on strict triples over [0,n+1). Spans s=2..w+1 contribute
// (n+1-s)(s-1) triples each; one uniform variate selects span, anchor, and
// middle element.
//
// Complexity: O(w) worst case for the span scan.
func (s *Stream) WindowedTriple(n, w int) (int, int, int) {
	if w >= n-1 {
		return s.Triple(n)
	}
	var (
		total int
		t     int
		span  int
		cnt   int
		a     int
		b     int
	)
	for span = 2; span <= w+1; span++ {
		total += (n + 1 - span) * (span - 1)
	}
	t = s.r.Intn(total)
	for span = 2; ; span++ {
		cnt = (n + 1 - span) * (span - 1)
		if t < cnt {
			break
		}
		t -= cnt
	}
	a = t / (span - 1)
	b = a + 1 + t%(span-1)
	return a, b, a + span - 1
}
