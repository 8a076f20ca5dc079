package mutation

import (
	"math"

	"github.com/katalvlaran/lvlsearch/rnd"
)

// unlimited marks an operator without a window constraint.
const unlimited = math.MaxInt

func streamOrDefault(s *rnd.Stream) *rnd.Stream {
	if s == nil {
		return rnd.New(0)
	}
	return s
}

// pairIdx draws a distinct ordered pair, window-limited when the window is
// narrower than the index range.
func pairIdx(s *rnd.Stream, n, window int) (int, int) {
	if window >= n-1 {
		return s.Pair(n)
	}
	return s.WindowedPair(n, window)
}

// tripleIdx draws a sorted triple i < j <= k, window-limited when the window
// is narrower than the index range.
func tripleIdx(s *rnd.Stream, n, window int) (int, int, int) {
	if window >= n-1 {
		return s.Triple(n)
	}
	return s.WindowedTriple(n, window)
}

// sortedPairIn draws a <= b uniformly over [lo,hi], equality allowed.
func sortedPairIn(s *rnd.Stream, lo, hi int) (int, int) {
	var m = hi - lo + 1
	var a = lo + s.Index(m)
	var b = lo + s.Index(m)
	if a > b {
		a, b = b, a
	}
	return a, b
}
