// Package concurrent_test - parallel reoptimizable multistart coordination.
package concurrent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsearch/concurrent"
	"github.com/katalvlaran/lvlsearch/permutation"
	"github.com/katalvlaran/lvlsearch/restarts"
	"github.com/katalvlaran/lvlsearch/search"
)

func TestParallelReopt_ConstructorValidation(t *testing.T) {
	var stub = newStubSearch()

	var _, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 10, 0)
	require.ErrorIs(t, err, concurrent.ErrNonPositiveThreads)

	_, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 0, 2)
	require.ErrorIs(t, err, restarts.ErrNonPositiveLength)

	_, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](nil, 10, 2)
	require.ErrorIs(t, err, restarts.ErrNilSearch)

	_, err = concurrent.NewParallelReoptimizableMultistarterWithSchedules[permutation.Permutation](stub, nil)
	require.ErrorIs(t, err, concurrent.ErrEmptySearches)

	var s1, _ = restarts.NewConstant(5)
	_, err = concurrent.NewParallelReoptimizableMultistarterMatched(
		[]search.ReoptimizableMetaheuristic[permutation.Permutation]{stub},
		[]restarts.Schedule{s1, s1.Split()},
	)
	require.ErrorIs(t, err, concurrent.ErrLengthMismatch)

	var b = newStubSearch()
	b.prob = stub.prob
	_, err = concurrent.NewParallelReoptimizableMultistarterFromSearches(
		[]search.ReoptimizableMetaheuristic[permutation.Permutation]{stub, b}, 10)
	require.ErrorIs(t, err, concurrent.ErrInconsistentTracker)
}

// TestParallelReopt_ReoptimizeResumesEveryWorker checks Reoptimize drives
// the resuming entry point on every worker, the original instance included.
func TestParallelReopt_ReoptimizeResumesEveryWorker(t *testing.T) {
	var stub = newStubSearch()
	var p, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 6, 2)
	require.NoError(t, err)
	defer p.Close()

	var best *search.SolutionCostPair[permutation.Permutation]
	best, err = p.Reoptimize(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, 4, stub.reoptimizeCalls)
	require.Zero(t, stub.optimizeCalls)
	require.EqualValues(t, 2*4, stub.episodes.Load())
	require.Equal(t, 2*4*6, p.TotalRunLength())

	best, err = p.Optimize(context.Background(), 2)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.Equal(t, 2, stub.optimizeCalls, "Optimize restarts fresh on every worker")
}

func TestParallelReopt_ClosedAndSplit(t *testing.T) {
	var stub = newStubSearch()
	var p, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 6, 2)
	require.NoError(t, err)

	var s = p.Split().(*concurrent.ParallelReoptimizableMultistarter[permutation.Permutation])
	var best, serr = s.Reoptimize(context.Background(), 2)
	require.NoError(t, serr)
	require.NotNil(t, best)
	s.Close()

	require.NoError(t, p.Close())
	_, err = p.Reoptimize(context.Background(), 3)
	require.ErrorIs(t, err, concurrent.ErrClosed)

	var cs = p.Split().(*concurrent.ParallelReoptimizableMultistarter[permutation.Permutation])
	_, err = cs.Optimize(context.Background(), 3)
	require.ErrorIs(t, err, concurrent.ErrClosed, "split of a closed coordinator stays closed")
}

func TestParallelReopt_PreStoppedAndCancellation(t *testing.T) {
	var stub = newStubSearch()
	stub.tr.Stop()
	var p, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 6, 2)
	require.NoError(t, err)
	defer p.Close()

	var best *search.SolutionCostPair[permutation.Permutation]
	best, err = p.Reoptimize(context.Background(), 5)
	require.NoError(t, err)
	require.Nil(t, best)
	require.Zero(t, stub.episodes.Load())

	var fresh = newStubSearch()
	var q, qerr = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](fresh, 6, 2)
	require.NoError(t, qerr)
	defer q.Close()
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	best, err = q.Reoptimize(ctx, 5)
	require.NoError(t, err)
	require.Nil(t, best)
	require.Zero(t, fresh.episodes.Load())
}

func TestParallelReopt_FromMultistarters(t *testing.T) {
	var stub = newStubSearch()
	var m1, err = restarts.NewConstantReoptimizableMultistarter[permutation.Permutation](stub, 5)
	require.NoError(t, err)
	var sp = stub.Split()
	sp.SetProgressTracker(stub.ProgressTracker())
	var m2, err2 = restarts.NewConstantReoptimizableMultistarter[permutation.Permutation](sp.(search.ReoptimizableMetaheuristic[permutation.Permutation]), 5)
	require.NoError(t, err2)

	var p, perr = concurrent.NewParallelReoptimizableMultistarterFromMultistarters(
		[]*restarts.ReoptimizableMultistarter[permutation.Permutation]{m1, m2})
	require.NoError(t, perr)
	defer p.Close()

	var best *search.SolutionCostPair[permutation.Permutation]
	best, perr = p.Reoptimize(context.Background(), 3)
	require.NoError(t, perr)
	require.NotNil(t, best)
	require.EqualValues(t, 2*3, stub.episodes.Load())
	require.Equal(t, 3, stub.reoptimizeCalls)
}

// TestParallelReopt_FoundBestRunLengthBound checks the early-end run-length
// accounting: with two workers and the optimum surfacing well inside the
// restart budget, the summed run length lands between the consumption at the
// find and twice that, and only the found-best latch trips.
func TestParallelReopt_FoundBestRunLengthBound(t *testing.T) {
	var stub = newStubSearch()
	stub.bestAfter = 6
	var p, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 7, 2)
	require.NoError(t, err)
	defer p.Close()

	var best *search.SolutionCostPair[permutation.Permutation]
	best, err = p.Reoptimize(context.Background(), 1000)
	require.NoError(t, err)
	require.NotNil(t, best)
	require.True(t, p.ProgressTracker().DidFindBest())
	require.False(t, p.ProgressTracker().IsStopped(), "found-best ends the run without tripping the stop latch")

	// Run length consumed when the optimum surfaced: 6 shared episodes of 7
	// iterations. Each worker finishes at most the episode in flight after
	// the latch, so the sum stays within twice that.
	var early = 6 * 7
	require.GreaterOrEqual(t, p.TotalRunLength(), early)
	require.LessOrEqual(t, p.TotalRunLength(), 2*early)
}

func TestParallelReopt_NonPositiveRestarts(t *testing.T) {
	var stub = newStubSearch()
	var p, err = concurrent.NewParallelReoptimizableMultistarter[permutation.Permutation](stub, 6, 2)
	require.NoError(t, err)
	defer p.Close()
	_, err = p.Reoptimize(context.Background(), 0)
	require.ErrorIs(t, err, search.ErrNonPositiveRunLength)
	_, err = p.Optimize(context.Background(), -3)
	require.ErrorIs(t, err, search.ErrNonPositiveRunLength)
}
