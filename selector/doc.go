// Package selector implements the per-dimension predicates: year range,
// month-day range, week number, weekday/nth, and holiday set matchers,
// plus the time-of-day matcher that consults package suncalc for
// variable (sun-relative) times.
//
// Every matcher exposes the same two-operation contract the evaluator
// relies on: Contains(instant) reports membership, and
// NextBoundaryAtOrAfter(instant) finds the next instant at or after which
// Contains's value changes. Both must be exact, not merely conservative —
// the evaluator's next-change search is only correct if boundaries are
// exact and monotone.
package selector
