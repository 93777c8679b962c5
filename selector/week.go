package selector

import (
	"time"

	"github.com/openhours/ohgo/calendar"
	"github.com/openhours/ohgo/semantics"
)

// WeekMatcher implements the Week dimension ("computes ISO
// week of input date").
type WeekMatcher struct {
	ranges []semantics.WeekRange
}

// NewWeekMatcher builds a WeekMatcher over the union of ranges.
func NewWeekMatcher(ranges []semantics.WeekRange) *WeekMatcher {
	return &WeekMatcher{ranges: ranges}
}

func (m *WeekMatcher) containsWeek(week int) bool {
	for _, r := range m.ranges {
		to := r.To
		if to == 0 {
			to = r.From
		}
		if week < r.From || week > to {
			continue
		}
		if r.Step <= 1 {
			return true
		}
		if (week-r.From)%r.Step == 0 {
			return true
		}
	}
	return false
}

// Contains implements Matcher.
func (m *WeekMatcher) Contains(instant time.Time) bool {
	if outOfBounds(instant) {
		return false
	}
	y, mo, d := instant.Date()
	_, week := calendar.ISOWeek(y, int(mo), d)
	return m.containsWeek(week)
}

// NextBoundaryAtOrAfter implements Matcher. ISO weeks run Monday to
// Sunday, so boundaries always fall at a day's midnight; this scans
// forward day by day for the next day whose ISO week has different
// membership.
func (m *WeekMatcher) NextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
	if outOfBounds(instant) {
		return capBoundary()
	}
	cur := m.Contains(instant)
	cursor := startOfNextDay(instant)
	for cursor.Year() <= MaxYear {
		if m.Contains(cursor) != cur {
			return cursor, true
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return capBoundary()
}
