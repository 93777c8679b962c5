package calendar

import (
	"testing"
	"time"
)

func TestGregorianToJDN(t *testing.T) {
	tests := []struct {
		name              string
		year, month, day  int
		want              int
	}{
		{"January 1, 2000", 2000, 1, 1, 2451545},
		{"Unix epoch", 1970, 1, 1, 2440588},
		{"Gregorian adoption", 1582, 10, 15, 2299161},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GregorianToJDN(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("GregorianToJDN(%d,%d,%d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestJDNRoundTrip(t *testing.T) {
	for _, date := range [][3]int{{1900, 1, 1}, {2024, 2, 29}, {2099, 12, 31}, {9999, 12, 31}} {
		jdn := GregorianToJDN(date[0], date[1], date[2])
		y, m, d := JDNToGregorian(jdn)
		if y != date[0] || m != date[1] || d != date[2] {
			t.Errorf("round trip for %v got (%d,%d,%d)", date, y, m, d)
		}
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true}, {1900, false}, {2024, true}, {2023, false}, {2400, true},
	}
	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, 2); got != 28 {
		t.Errorf("DaysInMonth(2023, 2) = %d, want 28", got)
	}
	if got := DaysInMonth(2024, 4); got != 30 {
		t.Errorf("DaysInMonth(2024, 4) = %d, want 30", got)
	}
}

func TestEaster(t *testing.T) {
	tests := []struct {
		year        int
		month, day  int
	}{
		{2024, 3, 31},
		{2025, 4, 20},
		{2026, 4, 5},
		{2000, 4, 23},
	}
	for _, tt := range tests {
		m, d := Easter(tt.year)
		if m != tt.month || d != tt.day {
			t.Errorf("Easter(%d) = %d-%d, want %d-%d", tt.year, m, d, tt.month, tt.day)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2024-01-03 is a Wednesday.
	if got := Weekday(2024, 1, 3); got != time.Wednesday {
		t.Errorf("Weekday(2024,1,3) = %v, want %v", got, time.Wednesday)
	}
}

func TestAddDays(t *testing.T) {
	y, m, d := AddDays(2024, 12, 30, 3)
	if y != 2025 || m != 1 || d != 2 {
		t.Errorf("AddDays(2024,12,30,3) = %d-%d-%d, want 2025-1-2", y, m, d)
	}
}

func TestISOWeek(t *testing.T) {
	wy, w := ISOWeek(2024, 1, 1)
	if wy != 2024 || w != 1 {
		t.Errorf("ISOWeek(2024,1,1) = (%d, %d), want (2024, 1)", wy, w)
	}
}
