package selector

import (
	"time"

	"github.com/openhours/ohgo/calendar"
	"github.com/openhours/ohgo/semantics"
)

// MonthDayMatcher implements the MonthDay dimension:
// resolving Easter and weekday-shifts at the target year, with a boundary
// at the start of the range (day 00:00) or the day after the range ends.
type MonthDayMatcher struct {
	ranges []semantics.MonthDayRange
}

// NewMonthDayMatcher builds a MonthDayMatcher over the union of ranges.
func NewMonthDayMatcher(ranges []semantics.MonthDayRange) *MonthDayMatcher {
	return &MonthDayMatcher{ranges: ranges}
}

// resolvePoint computes the concrete (year, month, day) an endpoint
// denotes when anchored to year, applying Easter resolution, the signed
// day-offset, and any weekday-shift, in that order ("MonthDay
// range").
func resolvePoint(p semantics.MonthDayPoint, year int) (int, int, int) {
	y, m, d := year, p.Month, p.Day
	if p.Easter {
		m, d = calendar.Easter(year)
	}
	if p.DayOffset != 0 {
		y, m, d = calendar.AddDays(y, m, d, p.DayOffset)
	}
	if p.Shift != nil {
		y, m, d = shiftToWeekday(y, m, d, p.Shift.Weekday, p.Shift.Forward)
	}
	return y, m, d
}

func shiftToWeekday(year, month, day int, target time.Weekday, forward bool) (int, int, int) {
	for i := 0; i < 7; i++ {
		if calendar.Weekday(year, month, day) == target {
			return year, month, day
		}
		if forward {
			year, month, day = calendar.AddDays(year, month, day, 1)
		} else {
			year, month, day = calendar.AddDays(year, month, day, -1)
		}
	}
	return year, month, day
}

// spanForYear computes the inclusive [from, to] (year, month, day)
// triples a range resolves to for the calendar year anchoring it. A
// month-only or month-span endpoint (Day == 0) resolves to the
// first/last day of its month.
func spanForYear(r semantics.MonthDayRange, year int) (fy, fm, fd, ty, tm, td int) {
	from := r.From
	if from.Day == 0 && !from.Easter {
		from.Day = 1
	}
	fy, fm, fd = resolvePoint(from, year)

	if r.OpenEnded {
		ty, tm, td = year, 12, 31
		return
	}

	to := r.To
	if to.Month == 0 && to.Day == 0 && !to.Easter {
		// Bare "To" unset means the range is a single month/day, same
		// as From.
		to = r.From
	}
	if to.Day == 0 && !to.Easter {
		to.Day = calendar.DaysInMonth(year, to.Month)
	}
	ty, tm, td = resolvePoint(to, year)
	return
}

func tripleLess(y1, m1, d1, y2, m2, d2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

func tripleLessEq(y1, m1, d1, y2, m2, d2 int) bool {
	return !tripleLess(y2, m2, d2, y1, m1, d1)
}

func (m *MonthDayMatcher) containsDate(year, month, day int) bool {
	for _, r := range m.ranges {
		if rangeContains(r, year, month, day) {
			return true
		}
	}
	return false
}

func rangeContains(r semantics.MonthDayRange, year, month, day int) bool {
	// A range anchored to an explicit year only ever matches that year.
	if r.From.Year != 0 && r.From.Year != year {
		return false
	}

	fy, fm, fd, ty, tm, td := spanForYear(r, year)
	if tripleLessEq(fy, fm, fd, ty, tm, td) {
		return tripleLessEq(fy, fm, fd, year, month, day) && tripleLessEq(year, month, day, ty, tm, td)
	}
	// Wraps year-end: split into [from, Dec 31] U [Jan 1, to].
	return tripleLessEq(fy, fm, fd, year, month, day) || tripleLessEq(year, month, day, ty, tm, td)
}

// Contains implements Matcher.
func (m *MonthDayMatcher) Contains(instant time.Time) bool {
	if outOfBounds(instant) {
		return false
	}
	y, mo, d := instant.Date()
	return m.containsDate(y, int(mo), d)
}

// NextBoundaryAtOrAfter implements Matcher. MonthDay boundaries always
// fall at a day's midnight, so this walks forward day by day from the
// day after instant looking for the first day whose membership differs.
// Membership is periodic in whole days, so a linear day scan is used
// rather than a closed-form jump — ranges with Easter/weekday-shift
// anchors don't admit one.
func (m *MonthDayMatcher) NextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
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
