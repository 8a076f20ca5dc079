// Package crossover implements permutation crossover operators: order
// crossover (OX), non-wrapping order crossover (NWOX), uniform order-based
// crossover (UOBX), and order crossover 2 (OX2).
//
// Operators recombine two parents in place: after Cross, each argument holds
// one child. Both parents must have the same length. Parameterized operators
// validate their rate at construction and accept an explicit *rnd.Stream
// (nil selects the deterministic default stream).
package crossover
