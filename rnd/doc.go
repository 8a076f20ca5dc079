// Package rnd provides deterministic random streams and the index samplers
// used by mutation and crossover operators.
//
// What you get:
//
//   - Stream: a seeded, splittable source of randomness. Same seed ⇒ identical
//     draws across platforms. Split derives an independent child stream for a
//     parallel worker without sharing state with the parent.
//   - Index samplers: single indexes, distinct pairs, sorted triples, and their
//     window-limited variants, each uniform over its admissible option set.
//
// Concurrency:
//
//   - A Stream is NOT goroutine-safe. One stream per goroutine; use Split to
//     derive streams for workers instead of sharing one.
//
// See Stream for the seed policy and the derivation scheme.
package rnd
