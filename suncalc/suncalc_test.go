package suncalc

import (
	"testing"
	"time"
)

func TestComputeEquatorEquinox(t *testing.T) {
	// Near the equator on an equinox, sunrise/sunset should be close to
	// 6 hours from local solar noon (roughly 06:00/18:00 UTC at lon 0).
	times := Compute(2024, 3, 20, 0, 0)
	if times.NeverRises || times.NeverSets {
		t.Fatal("equator should never report polar day/night")
	}

	if times.Sunrise < 5*time.Hour || times.Sunrise > 7*time.Hour {
		t.Errorf("Sunrise = %v, want roughly 06:00", times.Sunrise)
	}
	if times.Sunset < 17*time.Hour || times.Sunset > 19*time.Hour {
		t.Errorf("Sunset = %v, want roughly 18:00", times.Sunset)
	}
	if times.Dawn >= times.Sunrise {
		t.Errorf("Dawn (%v) should precede Sunrise (%v)", times.Dawn, times.Sunrise)
	}
	if times.Dusk <= times.Sunset {
		t.Errorf("Dusk (%v) should follow Sunset (%v)", times.Dusk, times.Sunset)
	}
}

func TestComputePolarNight(t *testing.T) {
	// Deep into the Arctic winter, the sun never rises.
	times := Compute(2024, 12, 21, 78, 0)
	if !times.NeverRises {
		t.Error("expected polar night at 78N on the winter solstice")
	}
}

func TestComputePolarDay(t *testing.T) {
	// Arctic midsummer: the sun never sets.
	times := Compute(2024, 6, 21, 78, 0)
	if !times.NeverSets {
		t.Error("expected midnight sun at 78N on the summer solstice")
	}
}

func TestTimesOffset(t *testing.T) {
	times := Times{Sunrise: 6 * time.Hour, Sunset: 18 * time.Hour}

	if _, ok := times.Offset(Sunrise); !ok {
		t.Error("expected Sunrise offset to be defined")
	}

	polar := Times{NeverRises: true, NeverSets: true}
	if _, ok := polar.Offset(Dawn); ok {
		t.Error("expected Dawn offset to be undefined during polar night")
	}
	if _, ok := polar.Offset(Dusk); ok {
		t.Error("expected Dusk offset to be undefined during polar night")
	}
}

func TestEventString(t *testing.T) {
	tests := map[Event]string{
		Dawn:    "dawn",
		Sunrise: "sunrise",
		Sunset:  "sunset",
		Dusk:    "dusk",
	}
	for e, want := range tests {
		if got := e.String(); got != want {
			t.Errorf("Event(%d).String() = %q, want %q", e, got, want)
		}
	}
}
