package selector

import (
	"time"

	"github.com/openhours/ohgo/semantics"
)

// YearMatcher implements the Year dimension ("Year: trivial
// arithmetic on the input year component").
type YearMatcher struct {
	ranges []semantics.YearRange
}

// NewYearMatcher builds a YearMatcher over the union of ranges.
func NewYearMatcher(ranges []semantics.YearRange) *YearMatcher {
	return &YearMatcher{ranges: ranges}
}

func (m *YearMatcher) containsYear(year int) bool {
	for _, r := range m.ranges {
		to := r.To
		if to == 0 {
			to = r.From
		}
		if r.OpenEnded {
			if year >= r.From {
				return true
			}
			continue
		}
		if year < r.From || year > to {
			continue
		}
		if r.Step <= 1 {
			return true
		}
		if (year-r.From)%r.Step == 0 {
			return true
		}
	}
	return false
}

// Contains implements Matcher.
func (m *YearMatcher) Contains(instant time.Time) bool {
	if outOfBounds(instant) {
		return false
	}
	return m.containsYear(instant.Year())
}

// NextBoundaryAtOrAfter implements Matcher. Year membership only changes
// at a Jan-1 boundary, so this walks forward one year at a time looking
// for the first year whose membership differs from the current one.
func (m *YearMatcher) NextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
	if outOfBounds(instant) {
		return capBoundary()
	}
	cur := m.containsYear(instant.Year())
	for y := instant.Year() + 1; y <= MaxYear; y++ {
		if m.containsYear(y) != cur {
			return time.Date(y, 1, 1, 0, 0, 0, 0, instant.Location()), true
		}
	}
	return capBoundary()
}
