// Package concurrent implements parallel multistart search: k workers, each
// a sequential multistarter over its own split of a metaheuristic, racing on
// the same problem while sharing one ProgressTracker.
//
// The coordinators satisfy the search interfaces, so parallel and sequential
// layers compose freely. Calls block until every worker finishes a restart
// generation; the shared tracker's stop and found-best latches end the race
// early, and context cancellation is honored cooperatively between restarts.
//
// A worker that panics is isolated: the remaining workers finish and the
// aggregate result is returned, with the captured failures available from
// WorkerFailures.
package concurrent
