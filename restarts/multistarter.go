// Package restarts - sequential multistart wrappers.
package restarts

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlsearch/search"
)

// ErrNilSearch is returned when a multistarter is constructed without a
// search to restart.
var ErrNilSearch = errors.New("restarts: search must not be nil")

// ErrNilSchedule is returned when a multistarter is constructed without a
// restart schedule.
var ErrNilSchedule = errors.New("restarts: schedule must not be nil")

// Multistarter restarts a wrapped search according to a schedule. For the
// wrapper, the run length passed to Optimize counts restarts; the schedule
// decides how long each restart runs.
//
// Multistarter satisfies search.Metaheuristic, delegating tracker, problem,
// and run-length accounting to the wrapped search.
type Multistarter[T search.Copyable[T]] struct {
	heur  search.Metaheuristic[T]
	sched Schedule
}

// NewMultistarter wraps heur with the given restart schedule.
func NewMultistarter[T search.Copyable[T]](heur search.Metaheuristic[T], sched Schedule) (*Multistarter[T], error) {
	if heur == nil {
		return nil, ErrNilSearch
	}
	if sched == nil {
		return nil, ErrNilSchedule
	}
	return &Multistarter[T]{heur: heur, sched: sched}, nil
}

// NewConstantMultistarter wraps heur with a constant schedule of length
// runLength >= 1.
func NewConstantMultistarter[T search.Copyable[T]](heur search.Metaheuristic[T], runLength int) (*Multistarter[T], error) {
	var sched, err = NewConstant(runLength)
	if err != nil {
		return nil, err
	}
	return NewMultistarter(heur, sched)
}

// runRestarts drives one episode function through up to numRestarts
// schedule-determined runs, returning the best pair across episodes. It
// checks the tracker's halt conditions and the context before every episode,
// including the first, so a pre-stopped tracker yields a nil result without
// running anything. Context cancellation is cooperative and not an error.
func runRestarts[T search.Copyable[T]](
	ctx context.Context,
	tracker *search.ProgressTracker[T],
	sched Schedule,
	numRestarts int,
	episode func(context.Context, int) (*search.SolutionCostPair[T], error),
) (*search.SolutionCostPair[T], error) {
	if numRestarts < 1 {
		return nil, search.ErrNonPositiveRunLength
	}
	var best *search.SolutionCostPair[T]
	var i int
	for i = 0; i < numRestarts; i++ {
		if tracker != nil && (tracker.IsStopped() || tracker.DidFindBest()) {
			break
		}
		if ctx.Err() != nil {
			break
		}
		var cur, err = episode(ctx, sched.NextRunLength())
		if err != nil {
			return best, err
		}
		if cur != nil && (best == nil || cur.Compare(best) < 0) {
			best = cur
		}
	}
	return best, nil
}

// Optimize runs up to numRestarts fresh restarts of the wrapped search and
// returns the best result, or nil if the tracker halted before any restart.
func (m *Multistarter[T]) Optimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
	return runRestarts(ctx, m.heur.ProgressTracker(), m.sched, numRestarts, m.heur.Optimize)
}

// ProgressTracker returns the wrapped search's tracker.
func (m *Multistarter[T]) ProgressTracker() *search.ProgressTracker[T] {
	return m.heur.ProgressTracker()
}

// SetProgressTracker replaces the wrapped search's tracker.
func (m *Multistarter[T]) SetProgressTracker(t *search.ProgressTracker[T]) {
	m.heur.SetProgressTracker(t)
}

// TotalRunLength reports the wrapped search's accumulated run length.
func (m *Multistarter[T]) TotalRunLength() int { return m.heur.TotalRunLength() }

// Problem returns the wrapped search's problem.
func (m *Multistarter[T]) Problem() search.Problem[T] { return m.heur.Problem() }

// Split returns a multistarter over a split of the wrapped search and an
// independent schedule restarted from the beginning.
func (m *Multistarter[T]) Split() search.Metaheuristic[T] {
	return &Multistarter[T]{heur: m.heur.Split(), sched: m.sched.Split()}
}

// ReoptimizableMultistarter is Multistarter for searches that can resume:
// Reoptimize continues the wrapped search from its prior state on every
// restart instead of starting fresh.
type ReoptimizableMultistarter[T search.Copyable[T]] struct {
	heur  search.ReoptimizableMetaheuristic[T]
	sched Schedule
}

// NewReoptimizableMultistarter wraps heur with the given restart schedule.
func NewReoptimizableMultistarter[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], sched Schedule) (*ReoptimizableMultistarter[T], error) {
	if heur == nil {
		return nil, ErrNilSearch
	}
	if sched == nil {
		return nil, ErrNilSchedule
	}
	return &ReoptimizableMultistarter[T]{heur: heur, sched: sched}, nil
}

// NewConstantReoptimizableMultistarter wraps heur with a constant schedule
// of length runLength >= 1.
func NewConstantReoptimizableMultistarter[T search.Copyable[T]](heur search.ReoptimizableMetaheuristic[T], runLength int) (*ReoptimizableMultistarter[T], error) {
	var sched, err = NewConstant(runLength)
	if err != nil {
		return nil, err
	}
	return NewReoptimizableMultistarter(heur, sched)
}

// Optimize runs up to numRestarts fresh restarts of the wrapped search.
func (m *ReoptimizableMultistarter[T]) Optimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
	return runRestarts(ctx, m.heur.ProgressTracker(), m.sched, numRestarts, m.heur.Optimize)
}

// Reoptimize runs up to numRestarts resuming restarts of the wrapped search.
func (m *ReoptimizableMultistarter[T]) Reoptimize(ctx context.Context, numRestarts int) (*search.SolutionCostPair[T], error) {
	return runRestarts(ctx, m.heur.ProgressTracker(), m.sched, numRestarts, m.heur.Reoptimize)
}

// ProgressTracker returns the wrapped search's tracker.
func (m *ReoptimizableMultistarter[T]) ProgressTracker() *search.ProgressTracker[T] {
	return m.heur.ProgressTracker()
}

// SetProgressTracker replaces the wrapped search's tracker.
func (m *ReoptimizableMultistarter[T]) SetProgressTracker(t *search.ProgressTracker[T]) {
	m.heur.SetProgressTracker(t)
}

// TotalRunLength reports the wrapped search's accumulated run length.
func (m *ReoptimizableMultistarter[T]) TotalRunLength() int { return m.heur.TotalRunLength() }

// Problem returns the wrapped search's problem.
func (m *ReoptimizableMultistarter[T]) Problem() search.Problem[T] { return m.heur.Problem() }

// Split returns a multistarter over a split of the wrapped search and an
// independent schedule. The split search must itself be reoptimizable; the
// wrapped search's Split contract guarantees it.
func (m *ReoptimizableMultistarter[T]) Split() search.Metaheuristic[T] {
	return &ReoptimizableMultistarter[T]{
		heur:  m.heur.Split().(search.ReoptimizableMetaheuristic[T]),
		sched: m.sched.Split(),
	}
}
