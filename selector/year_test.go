package selector

import (
	"testing"
	"time"

	"github.com/openhours/ohgo/semantics"
)

func TestYearMatcherContains(t *testing.T) {
	m := NewYearMatcher([]semantics.YearRange{{From: 2020, To: 2022}})
	if !m.Contains(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected 2021 to be in [2020,2022]")
	}
	if m.Contains(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected 2023 to be excluded")
	}
}

func TestYearMatcherOpenEnded(t *testing.T) {
	m := NewYearMatcher([]semantics.YearRange{{From: 2020, OpenEnded: true}})
	if !m.Contains(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected open-ended range to include 2099")
	}
	if m.Contains(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("expected 2019 to be excluded")
	}
}

func TestYearMatcherNextBoundary(t *testing.T) {
	m := NewYearMatcher([]semantics.YearRange{{From: 2099, OpenEnded: true}})
	boundary, ok := m.NextBoundaryAtOrAfter(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected a boundary")
	}
	want := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)
	if !boundary.Equal(want) {
		t.Errorf("NextBoundaryAtOrAfter = %v, want %v", boundary, want)
	}
}
