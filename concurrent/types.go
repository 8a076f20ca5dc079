// Package concurrent - sentinel errors and shared validation.
package concurrent

import (
	"context"
	"errors"
	"sync"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/lvlsearch/search"
)

// ErrNonPositiveThreads is returned by constructors when the worker count is
// not at least 1.
var ErrNonPositiveThreads = errors.New("concurrent: thread count must be positive")

// ErrEmptySearches is returned by constructors given an empty list of
// searches, schedules, or multistarters.
var ErrEmptySearches = errors.New("concurrent: at least one search required")

// ErrLengthMismatch is returned when matched search and schedule lists have
// different lengths.
var ErrLengthMismatch = errors.New("concurrent: searches and schedules must match in length")

// ErrInconsistentTracker is returned when supplied searches do not all share
// one ProgressTracker instance.
var ErrInconsistentTracker = errors.New("concurrent: searches must share one progress tracker")

// ErrInconsistentProblem is returned when supplied searches do not all solve
// one Problem instance.
var ErrInconsistentProblem = errors.New("concurrent: searches must share one problem")

// ErrClosed is returned when optimizing through a closed coordinator.
var ErrClosed = errors.New("concurrent: multistarter is closed")

// trackedSearch is the slice of the search interfaces the shared validation
// needs.
type trackedSearch[T search.Copyable[T]] interface {
	ProgressTracker() *search.ProgressTracker[T]
	Problem() search.Problem[T]
}

// validateShared checks that every search reports the same tracker and the
// same problem, by reference, as the first one. Racing workers that do not
// share state would silently optimize past each other, so this is a
// construction-time error.
func validateShared[T search.Copyable[T], S trackedSearch[T]](searches []S) error {
	var tr = searches[0].ProgressTracker()
	var prob = searches[0].Problem()
	for _, s := range searches[1:] {
		if s.ProgressTracker() != tr {
			return ErrInconsistentTracker
		}
		if s.Problem() != prob {
			return ErrInconsistentProblem
		}
	}
	return nil
}

// runWorkers fans numWorkers run calls out on a goroutine pool and collects
// the best pair across workers. A worker that panics or errors is dropped
// from the aggregate; its failure is returned alongside the best result.
func runWorkers[T search.Copyable[T]](
	numWorkers int,
	run func(worker int) (*search.SolutionCostPair[T], error),
) (*search.SolutionCostPair[T], []error) {
	var (
		mu       sync.Mutex
		best     *search.SolutionCostPair[T]
		failures []error
	)
	var p = pool.New().WithMaxGoroutines(numWorkers)
	var w int
	for w = 0; w < numWorkers; w++ {
		var worker = w
		p.Go(func() {
			var cur *search.SolutionCostPair[T]
			var err error
			var recovered = panics.Try(func() {
				cur, err = run(worker)
			})
			mu.Lock()
			defer mu.Unlock()
			if recovered != nil {
				failures = append(failures, recovered.AsError())
				return
			}
			if err != nil {
				failures = append(failures, err)
				return
			}
			if cur != nil && (best == nil || cur.Compare(best) < 0) {
				best = cur
			}
		})
	}
	p.Wait()
	return best, failures
}

// haltedBeforeStart reports whether a run should return without launching
// workers: the tracker already halted, or the context is already canceled.
func haltedBeforeStart[T search.Copyable[T]](ctx context.Context, tr *search.ProgressTracker[T]) bool {
	if ctx.Err() != nil {
		return true
	}
	return tr != nil && (tr.IsStopped() || tr.DidFindBest())
}
