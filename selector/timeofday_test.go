package selector

import (
	"testing"
	"time"

	"github.com/openhours/ohgo/semantics"
)

func clock(minutes int) semantics.TimePoint {
	c := semantics.ClockTime(minutes)
	return semantics.TimePoint{Clock: &c}
}

func TestTimeOfDayMatcherBasicRange(t *testing.T) {
	m := NewTimeOfDayMatcher([]semantics.TimeRange{
		{From: clock(12 * 60), To: clock(24 * 60)},
	}, false, 0, 0)

	if m.Contains(time.Date(2024, 10, 15, 11, 59, 0, 0, time.UTC)) {
		t.Error("expected 11:59 to not match")
	}
	if !m.Contains(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("expected 12:00 to match")
	}
	if !m.Contains(time.Date(2024, 10, 15, 23, 59, 0, 0, time.UTC)) {
		t.Error("expected 23:59 to match")
	}
}

func TestTimeOfDayMatcherSpillsToNextDay(t *testing.T) {
	// 22:00-02:00 spills into the next day.
	m := NewTimeOfDayMatcher([]semantics.TimeRange{
		{From: clock(22 * 60), To: clock(2 * 60)},
	}, false, 0, 0)

	if !m.Contains(time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)) {
		t.Error("expected 23:00 to match")
	}
	if !m.Contains(time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)) {
		t.Error("expected 01:00 the next day to match (spillover)")
	}
	if m.Contains(time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)) {
		t.Error("expected 03:00 to not match")
	}
}

func TestTimeOfDayMatcherEmptyMatchesAnyTime(t *testing.T) {
	m := NewTimeOfDayMatcher(nil, false, 0, 0)
	if !m.Contains(time.Date(2024, 1, 1, 3, 0, 0, 0, time.UTC)) {
		t.Error("expected empty TimeOfDay dimension to match every time (empty-date equivalence analogue)")
	}
}

func TestTimeOfDayMatcherNextBoundary(t *testing.T) {
	m := NewTimeOfDayMatcher([]semantics.TimeRange{
		{From: clock(12 * 60), To: clock(24 * 60)},
	}, false, 0, 0)

	boundary, ok := m.NextBoundaryAtOrAfter(time.Date(2024, 10, 15, 9, 59, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected a boundary")
	}
	want := time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)
	if !boundary.Equal(want) {
		t.Errorf("NextBoundaryAtOrAfter = %v, want %v", boundary, want)
	}
}
