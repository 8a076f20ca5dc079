// Package lvlsearch is your toolkit for stochastic local search — from
// permutation mutation operators and neighborhood iterators to crossover,
// restart schedules and parallel multistart coordination.
//
// 🚀 What is lvlsearch?
//
//	A deterministic, reproducible metaheuristics foundation that brings together:
//		• Permutation primitives: swap, reverse, block moves, rotation, scramble
//		• Mutation operators: Swap, AdjacentSwap, Reversal, Insertion, BlockMove,
//		  BlockInterchange, Scramble, Rotation — undoable and window-limited variants
//		• Neighborhood iterators: exhaustive enumeration with savepoint/rollback
//		• Crossover: OX, NWOX, UOBX, OX2 for permutation-encoded candidates
//		• Vectors: bounded real/integer candidates, Gaussian mutation
//		• Restart schedules: constant, variable annealing, Luby
//		• Parallel multistart: race split searches over one shared tracker
//
// ✨ Why choose lvlsearch?
//
//   - Reproducible – every random draw comes from an explicit seeded stream;
//     Split() derives independent substreams, never the clock
//   - Rock-solid guarantees – operators keep candidates valid, undo is exact,
//     iterators enumerate each neighbor exactly once
//   - Concurrency-ready – Split everything, share one ProgressTracker,
//     fan out with the parallel coordinator
//   - Pluggable – bring your own cost function; the search layer treats
//     candidates and problems as opaque interfaces
//
// Under the hood, everything is organized under these subpackages:
//
//	rnd/          — seeded streams + uniform index, pair and triple sampling
//	permutation/  — the Permutation type & in-place structural primitives
//	mutation/     — the operator suite, undo slots & neighborhood iterators
//	crossover/    — order-based recombination (OX, NWOX, UOBX, OX2)
//	vectors/      — bounded numeric vectors, initializers & Gaussian mutation
//	search/       — Problem/Metaheuristic contracts, SolutionCostPair, tracker
//	restarts/     — run-length schedules & the sequential Multistarter
//	concurrent/   — the parallel multistart coordinator
//
// Quick sketch of a parallel multistart:
//
//	heuristic ──split──► worker 0 ─┐
//	                     worker 1 ─┼──► shared ProgressTracker ──► best pair
//	                     worker k ─┘
//
// Dive into the package docs for the operator algebra, the iterator
// protocol and the restart schedule family.
//
//	go get github.com/katalvlaran/lvlsearch
package lvlsearch
