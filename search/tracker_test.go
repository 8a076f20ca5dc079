// Package search_test - progress tracker discipline.
package search_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/search"
)

func TestTracker_ImproveOnlyUpdates(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	require.Nil(t, tr.Best())

	require.True(t, tr.Update(10, permutation.New(4), false), "first update always accepted")
	require.Equal(t, 10, tr.Best().Cost())

	require.False(t, tr.Update(10, permutation.New(4), false), "equal cost rejected")
	require.False(t, tr.Update(11, permutation.New(4), false), "worse cost rejected")
	require.Equal(t, 10, tr.Best().Cost())

	require.True(t, tr.Update(9, permutation.New(4), false))
	require.Equal(t, 9, tr.Best().Cost())
}

// TestTracker_CopiesSolution checks the tracker decouples from the caller's
// working candidate, which operators keep mutating in place.
func TestTracker_CopiesSolution(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	var working = permutation.New(5)
	require.True(t, tr.Update(3, working, false))
	working.SwapElements(0, 4)
	require.True(t, permutation.New(5).Equal(tr.Best().Solution()), "best must not alias the working candidate")
}

func TestTracker_StopLatch(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	require.False(t, tr.IsStopped())
	tr.Stop()
	require.True(t, tr.IsStopped())
	tr.Stop() // idempotent
	require.True(t, tr.IsStopped())
	// Updates still work after stop; only execution is halted, not recording.
	require.True(t, tr.Update(1, permutation.New(3), false))
}

func TestTracker_FoundBestLatch(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	require.False(t, tr.DidFindBest())
	require.True(t, tr.Update(5, permutation.New(3), false))
	require.False(t, tr.DidFindBest())

	// A rejected update never latches, even if flagged optimal.
	require.False(t, tr.Update(5, permutation.New(3), true))
	require.False(t, tr.DidFindBest())

	require.True(t, tr.Update(2, permutation.New(3), true))
	require.True(t, tr.DidFindBest())
	require.True(t, tr.Best().ContainsKnownOptimal())
}

func TestTracker_UpdatePair(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	var p = search.NewFloatCost(permutation.New(4), 2.5, false)
	require.True(t, tr.UpdatePair(p))
	require.False(t, tr.UpdatePair(nil))
	require.False(t, tr.UpdatePair(search.NewFloatCost(permutation.New(4), 3.0, false)))
	require.Same(t, p, tr.Best())
}

// TestTracker_ConcurrentUpdates hammers the tracker from several goroutines
// and checks the record never regresses: the final best is the global
// minimum of every offered cost.
func TestTracker_ConcurrentUpdates(t *testing.T) {
	var tr = search.NewProgressTracker[permutation.Permutation]()
	var wg sync.WaitGroup
	var g int
	for g = 0; g < 8; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			var c int
			for c = 1000 + base; c > base; c-- {
				tr.Update(c, permutation.New(3), false)
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, 1, tr.Best().Cost())
}
