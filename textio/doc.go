// Package textio provides text-encoding utilities for opening_hours
// expression input.
//
// Expression text arrives from arbitrary embedders (OSM tag values, files,
// user input) and is not guaranteed to be clean UTF-8: it may carry a BOM,
// arrive as UTF-16, or contain stray invalid sequences. This package
// validates and normalizes that text before it reaches the lexer, and
// exposes NFC normalization so that two byte-distinct but canonically
// equivalent comment strings compare equal (relevant to to_string()
// round-tripping of free-text comments).
package textio
