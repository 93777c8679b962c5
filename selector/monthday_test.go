package selector

import (
	"testing"
	"time"

	"github.com/openhours/ohgo/semantics"
)

func TestMonthDayMatcherMonthOnly(t *testing.T) {
	// "Oct" spans October 1 through October 31.
	m := NewMonthDayMatcher([]semantics.MonthDayRange{
		{From: semantics.MonthDayPoint{Month: 10}},
	})

	if !m.Contains(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("expected October 15 to match")
	}
	if m.Contains(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected November 1 to not match")
	}
}

func TestMonthDayMatcherEaster(t *testing.T) {
	m := NewMonthDayMatcher([]semantics.MonthDayRange{
		{From: semantics.MonthDayPoint{Easter: true}},
	})
	if !m.Contains(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected 2024 Easter Sunday (March 31) to match")
	}
	if m.Contains(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected the day after Easter to not match")
	}
}

func TestMonthDayMatcherYearAnchored(t *testing.T) {
	m := NewMonthDayMatcher([]semantics.MonthDayRange{
		{From: semantics.MonthDayPoint{Year: 2099, Month: 1, Day: 1}},
	})
	if !m.Contains(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected 2099-01-01 to match")
	}
	if m.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("a year-anchored range should not match other years")
	}
}
