package selector

import (
	"testing"
	"time"

	"github.com/openhours/ohgo/calendar"
	"github.com/openhours/ohgo/holidays"
	"github.com/openhours/ohgo/semantics"
)

func TestWeekdayMatcherRange(t *testing.T) {
	sel := &semantics.WeekdaySelector{
		Ranges: []semantics.WeekdayRange{{From: time.Monday, To: time.Friday}},
	}
	m := NewWeekdayMatcher(sel, holidays.Set{})

	// 2024-01-03 is a Wednesday.
	if !m.Contains(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Wednesday to match Mo-Fr")
	}
	// 2024-01-06 is a Saturday.
	if m.Contains(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Saturday to not match Mo-Fr")
	}
}

func TestWeekdayMatcherHoliday(t *testing.T) {
	public := calendar.NewCalendar(2024, 1)
	public.Add(2024, 12, 25)

	sel := &semantics.WeekdaySelector{
		Holidays: []semantics.HolidayRef{{Kind: semantics.PublicHoliday}},
	}
	m := NewWeekdayMatcher(sel, holidays.Set{Public: public})

	if !m.Contains(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Dec 25 to match PH")
	}
	if m.Contains(time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected Dec 24 to not match PH")
	}
}

func TestWeekdayMatcherNthInMonth(t *testing.T) {
	// First Thursday of January 2024 is 2024-01-04.
	sel := &semantics.WeekdaySelector{
		Ranges: []semantics.WeekdayRange{{From: time.Thursday, To: time.Thursday, Nth: []int{1}}},
	}
	m := NewWeekdayMatcher(sel, holidays.Set{})

	if !m.Contains(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected the first Thursday to match")
	}
	if m.Contains(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected the second Thursday to not match")
	}
}
