// Package validator checks an opening_hours expression for problems that
// parse successfully but are semantically suspect: out-of-range
// monthday/week/nth values, a reversed year range, a weekday selector
// that can never match, and a fallback rule an earlier rule has already
// made unreachable
// (validate(text), plus the standalone Check(expr) linter).
package validator
