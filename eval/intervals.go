package eval

import (
	"context"
	"iter"
	"time"
)

// Interval is one maximal span of constant state, as yielded by
// Evaluator.Intervals.
type Interval struct {
	Start, End time.Time
	Result     Result
}

// Intervals implements intervals(from, until) operation: the
// lazy sequence of maximal (start, end, state, comment) intervals
// beginning at from, bounded by until (or the year-9999 cap if until is
// the zero value). The sequence emits at least one element unless
// from >= until.
//
// Each range-over-func call on the returned sequence walks forward from
// from again, so ranging over it a second time starts over.
func (e *Evaluator) Intervals(ctx context.Context, from, until time.Time) iter.Seq[Interval] {
	upperBound := time.Date(10000, 1, 1, 0, 0, 0, 0, from.Location())
	if !until.IsZero() && until.Before(upperBound) {
		upperBound = until
	}

	return func(yield func(Interval) bool) {
		if !from.Before(upperBound) {
			return
		}

		cursor := from
		for cursor.Before(upperBound) {
			select {
			case <-ctx.Done():
				return
			default:
			}

			result := e.State(cursor)
			end, ok := e.NextChange(ctx, cursor)
			if !ok || end.After(upperBound) {
				end = upperBound
			}

			if !yield(Interval{Start: cursor, End: end, Result: result}) {
				return
			}

			if !end.After(cursor) {
				// Defensive: guarantee forward progress even if a
				// boundary search degenerates to a no-op step.
				end = cursor.Add(time.Minute)
			}
			cursor = end
		}
	}
}
