// Package concurrent - the parallel reoptimizable multistarter.
package concurrent

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvlsearch/restarts"
	"github.com/katalvlaran/lvlsearch/search"
)

// ParallelReoptimizableMultistarter is ParallelMultistarter for searches
// that can resume: Reoptimize drives every worker through resuming restarts
// instead of fresh ones.
type ParallelReoptimizableMultistarter[T search.Copyable[T]] struct {
	workers []*restarts.ReoptimizableMultistarter[T]

	mu       sync.Mutex
	closed   bool
	failures []error
}

// NewParallelReoptimizableMultistarter clones heur across threads workers,
// each restarting every runLength iterations.
func NewParallelReoptimizableMultistarter[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], runLength, threads int) (*ParallelReoptimizableMultistarter[T], error) {
	if threads < 1 {
		return nil, ErrNonPositiveThreads
	}
	var scheds, err = restarts.NewConstants(threads, runLength)
	if err != nil {
		return nil, err
	}
	return newClonedReopt(heur, scheds)
}

// NewParallelReoptimizableMultistarterWithSchedule clones heur across
// threads workers; every worker follows its own split of sched.
func NewParallelReoptimizableMultistarterWithSchedule[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], sched restarts.Schedule, threads int) (*ParallelReoptimizableMultistarter[T], error) {
	if threads < 1 {
		return nil, ErrNonPositiveThreads
	}
	if sched == nil {
		return nil, restarts.ErrNilSchedule
	}
	var scheds = make([]restarts.Schedule, threads)
	scheds[0] = sched
	var i int
	for i = 1; i < threads; i++ {
		scheds[i] = sched.Split()
	}
	return newClonedReopt(heur, scheds)
}

// NewParallelReoptimizableMultistarterWithSchedules clones heur across one
// worker per supplied schedule.
func NewParallelReoptimizableMultistarterWithSchedules[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], scheds []restarts.Schedule) (*ParallelReoptimizableMultistarter[T], error) {
	if len(scheds) == 0 {
		return nil, ErrEmptySearches
	}
	return newClonedReopt(heur, scheds)
}

// NewParallelReoptimizableMultistarterFromSearches races the supplied
// searches, one worker each, restarting every runLength iterations. The
// searches must all share one tracker and one problem.
func NewParallelReoptimizableMultistarterFromSearches[T search.Copyable[T]](heurs []search.ReoptimizableMetaheuristic[T], runLength int) (*ParallelReoptimizableMultistarter[T], error) {
	if len(heurs) == 0 {
		return nil, ErrEmptySearches
	}
	var scheds, err = restarts.NewConstants(len(heurs), runLength)
	if err != nil {
		return nil, err
	}
	return newMatchedReopt(heurs, scheds)
}

// NewParallelReoptimizableMultistarterMatched races the supplied searches,
// pairing the i-th search with the i-th schedule. The lists must have equal
// length, and the searches must all share one tracker and one problem.
func NewParallelReoptimizableMultistarterMatched[T search.Copyable[T]](heurs []search.ReoptimizableMetaheuristic[T], scheds []restarts.Schedule) (*ParallelReoptimizableMultistarter[T], error) {
	if len(heurs) == 0 || len(scheds) == 0 {
		return nil, ErrEmptySearches
	}
	if len(heurs) != len(scheds) {
		return nil, ErrLengthMismatch
	}
	return newMatchedReopt(heurs, scheds)
}

// NewParallelReoptimizableMultistarterFromMultistarter clones an existing
// sequential reoptimizable multistarter across threads workers.
func NewParallelReoptimizableMultistarterFromMultistarter[T search.Copyable[T]](ms *restarts.ReoptimizableMultistarter[T], threads int) (*ParallelReoptimizableMultistarter[T], error) {
	if ms == nil {
		return nil, ErrEmptySearches
	}
	if threads < 1 {
		return nil, ErrNonPositiveThreads
	}
	var workers = make([]*restarts.ReoptimizableMultistarter[T], threads)
	workers[0] = ms
	var tr = ms.ProgressTracker()
	var i int
	for i = 1; i < threads; i++ {
		workers[i] = ms.Split().(*restarts.ReoptimizableMultistarter[T])
		workers[i].SetProgressTracker(tr)
	}
	return &ParallelReoptimizableMultistarter[T]{workers: workers}, nil
}

// NewParallelReoptimizableMultistarterFromMultistarters races the supplied
// sequential multistarters, one worker each. They must all share one tracker
// and one problem.
func NewParallelReoptimizableMultistarterFromMultistarters[T search.Copyable[T]](mss []*restarts.ReoptimizableMultistarter[T]) (*ParallelReoptimizableMultistarter[T], error) {
	if len(mss) == 0 {
		return nil, ErrEmptySearches
	}
	if err := validateShared[T](mss); err != nil {
		return nil, err
	}
	var workers = make([]*restarts.ReoptimizableMultistarter[T], len(mss))
	copy(workers, mss)
	return &ParallelReoptimizableMultistarter[T]{workers: workers}, nil
}

func newClonedReopt[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], scheds []restarts.Schedule) (*ParallelReoptimizableMultistarter[T], error) {
	if heur == nil {
		return nil, restarts.ErrNilSearch
	}
	var tr = heur.ProgressTracker()
	var workers = make([]*restarts.ReoptimizableMultistarter[T], len(scheds))
	var i int
	for i = range scheds {
		var h = heur
		if i > 0 {
			h = heur.Split().(search.ReoptimizableMetaheuristic[T])
			h.SetProgressTracker(tr)
		}
		var w, err = restarts.NewReoptimizableMultistarter(h, scheds[i])
		if err != nil {
			return nil, err
		}
		workers[i] = w
	}
	return &ParallelReoptimizableMultistarter[T]{workers: workers}, nil
}

func newMatchedReopt[T search.Copyable[T]](heurs []search.ReoptimizableMetaheuristic[T], scheds []restarts.Schedule) (*ParallelReoptimizableMultistarter[T], error) {
	if err := validateShared[T](heurs); err != nil {
		return nil, err
	}
	var workers = make([]*restarts.ReoptimizableMultistarter[T], len(heurs))
	var i int
	for i = range heurs {
		var w, err = restarts.NewReoptimizableMultistarter(heurs[i], scheds[i])
		if err != nil {
			return nil, err
		}
		workers[i] = w
	}
	return &ParallelReoptimizableMultistarter[T]{workers: workers}, nil
}

// run fans one restart generation out across workers using either fresh or
// resuming restarts.
func (p *ParallelReoptimizableMultistarter[T]) run(
	ctx context.Context,
	numRestarts int,
	episode func(w *restarts.ReoptimizableMultistarter[T]) (*search.SolutionCostPair[T], error),
) (*search.SolutionCostPair[T], error) {
	if numRestarts < 1 {
		return nil, search.ErrNonPositiveRunLength
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	p.mu.Unlock()

	var tr = p.workers[0].ProgressTracker()
	if haltedBeforeStart(ctx, tr) {
		return nil, nil
	}
	var best, failures = runWorkers(len(p.workers), func(w int) (*search.SolutionCostPair[T], error) {
		return episode(p.workers[w])
	})
	p.mu.Lock()
	p.failures = failures
	p.mu.Unlock()
	if best == nil && tr != nil {
		best = tr.Best()
	}
	return best, nil
}

// Optimize runs every worker for numRestarts fresh restarts and returns the
// best result across workers, or nil if the shared tracker had already
// halted.
func (p *ParallelReoptimizableMultistarter[T]) Optimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
	return p.run(ctx, numRestarts, func(w *restarts.ReoptimizableMultistarter[T]) (*search.SolutionCostPair[T], error) {
		return w.Optimize(ctx, numRestarts)
	})
}

// Reoptimize runs every worker for numRestarts resuming restarts and
// returns the best result across workers, or nil if the shared tracker had
// already halted.
func (p *ParallelReoptimizableMultistarter[T]) Reoptimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
	return p.run(ctx, numRestarts, func(w *restarts.ReoptimizableMultistarter[T]) (*search.SolutionCostPair[T], error) {
		return w.Reoptimize(ctx, numRestarts)
	})
}

// WorkerFailures returns the panics and errors captured from workers during
// the most recent run.
func (p *ParallelReoptimizableMultistarter[T]) WorkerFailures() []error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// ProgressTracker returns the tracker shared by every worker.
func (p *ParallelReoptimizableMultistarter[T]) ProgressTracker() *search.ProgressTracker[T] {
	return p.workers[0].ProgressTracker()
}

// SetProgressTracker replaces the tracker on every worker.
func (p *ParallelReoptimizableMultistarter[T]) SetProgressTracker(t *search.ProgressTracker[T]) {
	for _, w := range p.workers {
		w.SetProgressTracker(t)
	}
}

// TotalRunLength sums the accumulated run length across workers.
func (p *ParallelReoptimizableMultistarter[T]) TotalRunLength() int {
	var total int
	for _, w := range p.workers {
		total += w.TotalRunLength()
	}
	return total
}

// Problem returns the problem shared by every worker.
func (p *ParallelReoptimizableMultistarter[T]) Problem() search.Problem[T] {
	return p.workers[0].Problem()
}

// Split returns a coordinator over splits of every worker, re-sharing one
// fresh tracker among them. A split of a closed coordinator is closed.
func (p *ParallelReoptimizableMultistarter[T]) Split() search.Metaheuristic[T] {
	p.mu.Lock()
	var closed = p.closed
	p.mu.Unlock()

	var workers = make([]*restarts.ReoptimizableMultistarter[T], len(p.workers))
	workers[0] = p.workers[0].Split().(*restarts.ReoptimizableMultistarter[T])
	var tr = workers[0].ProgressTracker()
	var i int
	for i = 1; i < len(p.workers); i++ {
		workers[i] = p.workers[i].Split().(*restarts.ReoptimizableMultistarter[T])
		workers[i].SetProgressTracker(tr)
	}
	return &ParallelReoptimizableMultistarter[T]{workers: workers, closed: closed}
}

// Close marks the coordinator unusable for further runs. Close is
// idempotent and never fails.
func (p *ParallelReoptimizableMultistarter[T]) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}
