// Package search - shared best-so-far state.
package search

import "sync"

// ProgressTracker is the thread-safe best-so-far record shared by every
// search working on the same problem instance. Updates follow a strict
// improve-only discipline: a candidate is recorded only while its cost beats
// the current best, checked and written under one lock so concurrent
// updaters cannot regress the record.
//
// The tracker also carries two one-way latches: Stop, a cooperative halt
// signal for all searches sharing the tracker, and the found-best flag,
// which latches when an accepted update is flagged as a known optimum.
type ProgressTracker[T Copyable[T]] struct {
	mu        sync.RWMutex
	best      *SolutionCostPair[T]
	stopped   bool
	foundBest bool
}

// NewProgressTracker returns an empty tracker: no best, not stopped.
func NewProgressTracker[T Copyable[T]]() *ProgressTracker[T] {
	return &ProgressTracker[T]{}
}

// Update offers an integer-cost candidate. The solution is deep copied when
// accepted, so the caller may keep mutating its working candidate. Reports
// whether the candidate became the new best.
func (t *ProgressTracker[T]) Update(cost int, solution T, knownOptimal bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.best != nil && float64(cost) >= t.best.costD {
		return false
	}
	t.best = NewIntCost(solution.Copy(), cost, knownOptimal)
	if knownOptimal {
		t.foundBest = true
	}
	return true
}

// UpdateDouble offers a real-cost candidate; otherwise identical to Update.
func (t *ProgressTracker[T]) UpdateDouble(cost float64, solution T, knownOptimal bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.best != nil && cost >= t.best.costD {
		return false
	}
	t.best = NewFloatCost(solution.Copy(), cost, knownOptimal)
	if knownOptimal {
		t.foundBest = true
	}
	return true
}

// UpdatePair offers an existing pair, keeping its cost type and flags. The
// pair is stored as-is; callers hand over ownership. Reports whether it
// became the new best.
func (t *ProgressTracker[T]) UpdatePair(p *SolutionCostPair[T]) bool {
	if p == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.best != nil && p.costD >= t.best.costD {
		return false
	}
	t.best = p
	if p.knownOptimal {
		t.foundBest = true
	}
	return true
}

// Best returns the current best pair, or nil when nothing was recorded yet.
func (t *ProgressTracker[T]) Best() *SolutionCostPair[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.best
}

// Stop latches the halt signal. Searches sharing the tracker observe it
// between iterations; there is no way to clear it.
func (t *ProgressTracker[T]) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
}

// IsStopped reports whether Stop was called.
func (t *ProgressTracker[T]) IsStopped() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stopped
}

// DidFindBest reports whether an accepted update carried a known optimum.
func (t *ProgressTracker[T]) DidFindBest() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.foundBest
}
