// Package dialect provides grammar-strictness profiles for the parser.
//
// The published opening_hours grammar mandates certain inter-token spaces
// and forbids unrecognized extensions. Real-world data frequently violates
// both rules. This package names the two supported profiles — Strict and
// Lenient — and the individual leniency features Lenient enables, so the
// parser's acceptance of a given input is a declared, testable property
// rather than an accident of the recursive-descent implementation.
package dialect
