// Package concurrent - the parallel multistarter.
package concurrent

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvlsearch/restarts"
	"github.com/katalvlaran/lvlsearch/search"
)

// ParallelMultistarter races k sequential multistarters, each on its own
// split of a metaheuristic, sharing one ProgressTracker. Optimize runs every
// worker for the requested number of restarts and returns the best result
// across workers.
//
// The first worker always binds the originally supplied search instance;
// further workers bind splits of it. A coordinator is reusable until Close.
type ParallelMultistarter[T search.Copyable[T]] struct {
	workers []*restarts.Multistarter[T]

	mu       sync.Mutex
	closed   bool
	failures []error
}

// NewParallelMultistarter clones heur across threads workers, each
// restarting every runLength iterations.
func NewParallelMultistarter[T search.Copyable[T]](heur search.Metaheuristic[T], runLength, threads int) (*ParallelMultistarter[T], error) {
	if threads < 1 {
		return nil, ErrNonPositiveThreads
	}
	var scheds, err = restarts.NewConstants(threads, runLength)
	if err != nil {
		return nil, err
	}
	return newCloned(heur, scheds)
}

// NewParallelMultistarterWithSchedule clones heur across threads workers;
// every worker follows its own split of sched.
func NewParallelMultistarterWithSchedule[T search.Copyable[T]](heur search.Metaheuristic[T], sched restarts.Schedule, threads int) (*ParallelMultistarter[T], error) {
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
	return newCloned(heur, scheds)
}

// NewParallelMultistarterWithSchedules clones heur across one worker per
// supplied schedule.
func NewParallelMultistarterWithSchedules[T search.Copyable[T]](heur search.Metaheuristic[T], scheds []restarts.Schedule) (*ParallelMultistarter[T], error) {
	if len(scheds) == 0 {
		return nil, ErrEmptySearches
	}
	return newCloned(heur, scheds)
}

// NewParallelMultistarterFromSearches races the supplied searches, one
// worker each, restarting every runLength iterations. The searches must all
// share one tracker and one problem.
func NewParallelMultistarterFromSearches[T search.Copyable[T]](heurs []search.Metaheuristic[T], runLength int) (*ParallelMultistarter[T], error) {
	if len(heurs) == 0 {
		return nil, ErrEmptySearches
	}
	var scheds, err = restarts.NewConstants(len(heurs), runLength)
	if err != nil {
		return nil, err
	}
	return newMatched(heurs, scheds)
}

// NewParallelMultistarterMatched races the supplied searches, pairing the
// i-th search with the i-th schedule. The lists must have equal length, and
// the searches must all share one tracker and one problem.
func NewParallelMultistarterMatched[T search.Copyable[T]](heurs []search.Metaheuristic[T], scheds []restarts.Schedule) (*ParallelMultistarter[T], error) {
	if len(heurs) == 0 || len(scheds) == 0 {
		return nil, ErrEmptySearches
	}
	if len(heurs) != len(scheds) {
		return nil, ErrLengthMismatch
	}
	return newMatched(heurs, scheds)
}

// NewParallelMultistarterFromMultistarter clones an existing sequential
// multistarter across threads workers.
func NewParallelMultistarterFromMultistarter[T search.Copyable[T]](ms *restarts.Multistarter[T], threads int) (*ParallelMultistarter[T], error) {
	if ms == nil {
		return nil, ErrEmptySearches
	}
	if threads < 1 {
		return nil, ErrNonPositiveThreads
	}
	var workers = make([]*restarts.Multistarter[T], threads)
	workers[0] = ms
	var tr = ms.ProgressTracker()
	var i int
	for i = 1; i < threads; i++ {
		workers[i] = ms.Split().(*restarts.Multistarter[T])
		workers[i].SetProgressTracker(tr)
	}
	return &ParallelMultistarter[T]{workers: workers}, nil
}

// NewParallelMultistarterFromMultistarters races the supplied sequential
// multistarters, one worker each. They must all share one tracker and one
// problem.
func NewParallelMultistarterFromMultistarters[T search.Copyable[T]](mss []*restarts.Multistarter[T]) (*ParallelMultistarter[T], error) {
	if len(mss) == 0 {
		return nil, ErrEmptySearches
	}
	if err := validateShared[T](mss); err != nil {
		return nil, err
	}
	var workers = make([]*restarts.Multistarter[T], len(mss))
	copy(workers, mss)
	return &ParallelMultistarter[T]{workers: workers}, nil
}

// newCloned builds one worker per schedule: the first worker binds heur
// itself, the rest bind splits sharing heur's tracker.
func newCloned[T search.Copyable[T]](heur search.Metaheuristic[T], scheds []restarts.Schedule) (*ParallelMultistarter[T], error) {
	if heur == nil {
		return nil, restarts.ErrNilSearch
	}
	var tr = heur.ProgressTracker()
	var workers = make([]*restarts.Multistarter[T], len(scheds))
	var i int
	for i = range scheds {
		var h = heur
		if i > 0 {
			h = heur.Split()
			h.SetProgressTracker(tr)
		}
		var w, err = restarts.NewMultistarter(h, scheds[i])
		if err != nil {
			return nil, err
		}
		workers[i] = w
	}
	return &ParallelMultistarter[T]{workers: workers}, nil
}

// newMatched builds one worker per supplied search after checking the
// searches share tracker and problem.
func newMatched[T search.Copyable[T]](heurs []search.Metaheuristic[T], scheds []restarts.Schedule) (*ParallelMultistarter[T], error) {
	if err := validateShared[T](heurs); err != nil {
		return nil, err
	}
	var workers = make([]*restarts.Multistarter[T], len(heurs))
	var i int
	for i = range heurs {
		var w, err = restarts.NewMultistarter(heurs[i], scheds[i])
		if err != nil {
			return nil, err
		}
		workers[i] = w
	}
	return &ParallelMultistarter[T]{workers: workers}, nil
}

// Optimize runs every worker for numRestarts restarts and returns the best
// result across workers, or nil if the shared tracker had already halted.
// Panicking or failing workers are excluded from the aggregate; their
// failures are available from WorkerFailures until the next run.
func (p *ParallelMultistarter[T]) Optimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
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
		return p.workers[w].Optimize(ctx, numRestarts)
	})
	p.mu.Lock()
	p.failures = failures
	p.mu.Unlock()
	if best == nil && tr != nil {
		best = tr.Best()
	}
	return best, nil
}

// WorkerFailures returns the panics and errors captured from workers during
// the most recent run.
func (p *ParallelMultistarter[T]) WorkerFailures() []error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failures
}

// ProgressTracker returns the tracker shared by every worker.
func (p *ParallelMultistarter[T]) ProgressTracker() *search.ProgressTracker[T] {
	return p.workers[0].ProgressTracker()
}

// SetProgressTracker replaces the tracker on every worker.
func (p *ParallelMultistarter[T]) SetProgressTracker(t *search.ProgressTracker[T]) {
	for _, w := range p.workers {
		w.SetProgressTracker(t)
	}
}

// TotalRunLength sums the accumulated run length across workers.
func (p *ParallelMultistarter[T]) TotalRunLength() int {
	var total int
	for _, w := range p.workers {
		total += w.TotalRunLength()
	}
	return total
}

// Problem returns the problem shared by every worker.
func (p *ParallelMultistarter[T]) Problem() search.Problem[T] {
	return p.workers[0].Problem()
}

// Split returns a coordinator over splits of every worker, re-sharing one
// fresh tracker among them. A split of a closed coordinator is closed.
func (p *ParallelMultistarter[T]) Split() search.Metaheuristic[T] {
	p.mu.Lock()
	var closed = p.closed
	p.mu.Unlock()

	var workers = make([]*restarts.Multistarter[T], len(p.workers))
	workers[0] = p.workers[0].Split().(*restarts.Multistarter[T])
	var tr = workers[0].ProgressTracker()
	var i int
	for i = 1; i < len(p.workers); i++ {
		workers[i] = p.workers[i].Split().(*restarts.Multistarter[T])
		workers[i].SetProgressTracker(tr)
	}
	return &ParallelMultistarter[T]{workers: workers, closed: closed}
}

// Close marks the coordinator unusable for further runs. Close is
// idempotent and never fails; it exists so callers can scope the
// coordinator's lifetime like any other resource.
func (p *ParallelMultistarter[T]) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}
