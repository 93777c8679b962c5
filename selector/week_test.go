package selector

import (
	"testing"
	"time"

	"github.com/openhours/ohgo/semantics"
)

func TestWeekMatcherContainsSingleWeek(t *testing.T) {
	m := NewWeekMatcher([]semantics.WeekRange{{From: 1, To: 1}})

	if !m.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("2024-01-01 (ISO week 1) should be contained")
	}
	if m.Contains(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Error("2024-01-08 (ISO week 2) should not be contained")
	}
}

func TestWeekMatcherStep(t *testing.T) {
	m := NewWeekMatcher([]semantics.WeekRange{{From: 1, To: 10, Step: 2}})
	if !m.containsWeek(1) || m.containsWeek(2) || !m.containsWeek(3) {
		t.Error("step-2 week range should contain odd weeks only")
	}
}

func TestWeekMatcherNextBoundary(t *testing.T) {
	m := NewWeekMatcher([]semantics.WeekRange{{From: 1, To: 1}})
	boundary, ok := m.NextBoundaryAtOrAfter(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected a boundary")
	}
	want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	if !boundary.Equal(want) {
		t.Errorf("NextBoundaryAtOrAfter = %v, want %v", boundary, want)
	}
}
