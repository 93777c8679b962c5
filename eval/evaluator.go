package eval

import (
	"context"
	"time"

	"github.com/openhours/ohgo/semantics"
)

// Evaluator answers state and next-change queries for a compiled
// expression against a fixed evaluation context. It is
// immutable after construction and safe for concurrent use.
type Evaluator struct {
	expr     *semantics.Expression
	ctx      semantics.EvaluationContext
	matchers []ruleMatcher
}

// New builds an Evaluator for expr under ctx, precomputing each rule's
// dimension matchers.
func New(expr *semantics.Expression, ctx semantics.EvaluationContext) *Evaluator {
	matchers := make([]ruleMatcher, len(expr.Rules))
	for i, rule := range expr.Rules {
		matchers[i] = buildRuleMatcher(rule.Selector, ctx, ctx.Holidays)
	}
	return &Evaluator{expr: expr, ctx: ctx, matchers: matchers}
}

// Result is the outcome of a State query: the resolved state plus the
// comment of whichever rule produced it (empty if none did).
type Result struct {
	State   semantics.State
	Comment string
}

// State implements the state(instant) operation.
//
// Composition: rules are walked in order. An Override or Additional rule
// that matches replaces the running result outright (ties resolved by
// rule order — later wins); a Fallback rule only applies if no prior
// rule in the expression has matched this instant at all. See DESIGN.md
// for why Additional is resolved identically to Override here.
func (e *Evaluator) State(instant time.Time) Result {
	if outOfSupportedRange(instant) {
		return Result{State: semantics.Closed}
	}

	result := Result{State: semantics.Closed}
	matchedAny := false

	for i, rule := range e.expr.Rules {
		matched := e.matchers[i].contains(instant)

		switch rule.Combinator {
		case semantics.Override, semantics.Additional:
			if matched {
				result = Result{State: rule.State, Comment: rule.Comment}
				matchedAny = true
			}
		case semantics.Fallback:
			if !matchedAny && matched {
				result = Result{State: rule.State, Comment: rule.Comment}
				matchedAny = true
			}
		}
	}

	return result
}

// outOfSupportedRange applies the same [1900, 9999] year bounds as
// selector.MinYear and selector.MaxYear: dates outside them always
// report Closed.
func outOfSupportedRange(instant time.Time) bool {
	y := instant.Year()
	return y < 1900 || y > 9999
}

// NextChange implements next_change(instant) operation: the
// smallest instant strictly after instant at which State differs, or
// ok == false if there is none up to the year-9999 cap.
//
// parent may carry a cancellation signal; it is checked once per
// candidate iteration.
func (e *Evaluator) NextChange(parent context.Context, instant time.Time) (time.Time, bool) {
	if outOfSupportedRange(instant) {
		if instant.Year() < 1900 {
			return time.Date(1900, 1, 1, 0, 0, 0, 0, instant.Location()), true
		}
		return time.Time{}, false
	}

	baseline := e.State(instant)
	cursor := instant

	for {
		select {
		case <-parent.Done():
			return time.Time{}, false
		default:
		}

		candidate, ok := e.earliestRuleBoundary(cursor)
		if !ok {
			return time.Time{}, false
		}
		if !candidate.After(cursor) {
			candidate = cursor.Add(time.Minute)
		}
		if candidate.Year() > 9999 {
			return time.Time{}, false
		}

		if e.State(candidate).State != baseline.State {
			return candidate, true
		}
		cursor = candidate
	}
}

// earliestRuleBoundary is the minimum, over every rule, of that rule's
// earliest possible membership-flip instant at or after cursor — "the
// earliest moment at which at least one rule's membership could flip"
// (next-change algorithm).
func (e *Evaluator) earliestRuleBoundary(cursor time.Time) (time.Time, bool) {
	var (
		best  time.Time
		found bool
	)
	for _, m := range e.matchers {
		boundary, ok := m.nextBoundaryAtOrAfter(cursor)
		if !ok {
			continue
		}
		if !found || boundary.Before(best) {
			best, found = boundary, true
		}
	}
	return best, found
}
