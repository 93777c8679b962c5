// Package eval implements the time-domain evaluator: rule
// composition, state resolution at an instant, forward search for the
// next state change, and the lazy interval iterator.
//
// An Evaluator is built once from a compiled semantics.Expression and an
// EvaluationContext and may be queried concurrently by any number of
// readers; it holds no mutable state itself. The Intervals lazy sequence
// is the one stateful, single-owner exception: its iterator must not be
// shared across goroutines.
package eval
