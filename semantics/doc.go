// Package semantics holds the normalized intermediate form of an
// opening_hours expression (§4.C): rule sequences, selector
// dimensions, and the tri-state State value rules resolve to.
//
// It is the compiled form the parser's concrete syntax tree lowers into,
// and the form the selector and eval packages consume. Values in this
// package are immutable once built: an Expression may be shared across
// goroutines and queried concurrently without synchronization.
package semantics
