package selector

import (
	"time"

	"github.com/openhours/ohgo/calendar"
	"github.com/openhours/ohgo/holidays"
	"github.com/openhours/ohgo/semantics"
)

// WeekdayMatcher implements the Weekday/Holiday dimension:
// weekday unions with optional nth-in-month constraints, plus holiday
// tags consulting the Compact Calendar (4.A).
type WeekdayMatcher struct {
	selector *semantics.WeekdaySelector
	holidays holidays.Set
}

// NewWeekdayMatcher builds a WeekdayMatcher. holidaySet may be the zero
// value if the context carries no holiday data; holiday ranges then never
// match.
func NewWeekdayMatcher(sel *semantics.WeekdaySelector, holidaySet holidays.Set) *WeekdayMatcher {
	return &WeekdayMatcher{selector: sel, holidays: holidaySet}
}

func weekdayInSpan(wd, from, to time.Weekday) bool {
	if from <= to {
		return wd >= from && wd <= to
	}
	// Wraps the week (e.g. Fr-Mo).
	return wd >= from || wd <= to
}

func nthMatches(year, month, day int, nth []int) bool {
	if len(nth) == 0 {
		return true
	}
	occurrence := (day-1)/7 + 1
	daysInMonth := calendar.DaysInMonth(year, month)
	fromEnd := (daysInMonth-day)/7 + 1

	for _, n := range nth {
		if n > 0 && n == occurrence {
			return true
		}
		if n < 0 && -n == fromEnd {
			return true
		}
	}
	return false
}

func (m *WeekdayMatcher) containsWeekdayRanges(year, month, day int, wd time.Weekday) bool {
	if m.selector == nil {
		return false
	}
	shiftedDay := day
	for _, r := range m.selector.Ranges {
		effectiveWd := wd
		y, mo, d := year, month, shiftedDay
		if r.DayOffset != 0 {
			y, mo, d = calendar.AddDays(year, month, day, r.DayOffset)
			effectiveWd = calendar.Weekday(y, mo, d)
		}
		if !weekdayInSpan(effectiveWd, r.From, r.To) {
			continue
		}
		if !nthMatches(y, mo, d, r.Nth) {
			continue
		}
		return true
	}
	return false
}

func (m *WeekdayMatcher) containsHolidays(year, month, day int) bool {
	if m.selector == nil {
		return false
	}
	for _, h := range m.selector.Holidays {
		y, mo, d := year, month, day
		if h.DayOffset != 0 {
			y, mo, d = calendar.AddDays(year, month, day, h.DayOffset)
		}
		cal := m.holidays.Public
		if h.Kind == semantics.SchoolHoliday {
			cal = m.holidays.School
		}
		if cal != nil && cal.Contains(y, mo, d) {
			return true
		}
	}
	return false
}

// Contains implements Matcher.
func (m *WeekdayMatcher) Contains(instant time.Time) bool {
	if outOfBounds(instant) || m.selector == nil {
		return false
	}
	year, month, day := instant.Date()
	wd := instant.Weekday()

	if len(m.selector.Ranges) > 0 && m.containsWeekdayRanges(year, int(month), day, wd) {
		return true
	}
	if len(m.selector.Holidays) > 0 && m.containsHolidays(year, int(month), day) {
		return true
	}
	return false
}

// NextBoundaryAtOrAfter implements Matcher. Weekday/holiday membership
// only ever changes at midnight, so this scans forward day by day.
func (m *WeekdayMatcher) NextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
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
