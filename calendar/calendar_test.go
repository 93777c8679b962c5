package calendar

import (
	"bytes"
	"testing"
)

func TestCalendarContains(t *testing.T) {
	c := NewCalendar(2020, 5)
	c.Add(2024, 12, 25)
	c.Add(2024, 1, 1)

	if !c.Contains(2024, 12, 25) {
		t.Error("expected 2024-12-25 to be a member")
	}
	if !c.Contains(2024, 1, 1) {
		t.Error("expected 2024-01-01 to be a member")
	}
	if c.Contains(2024, 12, 26) {
		t.Error("2024-12-26 should not be a member")
	}
	if c.Contains(2019, 12, 25) {
		t.Error("year outside bounds should return false")
	}
	if c.Contains(2030, 1, 1) {
		t.Error("year outside bounds should return false")
	}
}

func TestCalendarFirstAfter(t *testing.T) {
	c := NewCalendar(2024, 1)
	c.Add(2024, 1, 1)
	c.Add(2024, 7, 4)
	c.Add(2024, 12, 25)

	y, m, d, ok := c.FirstAfter(2024, 1, 1)
	if !ok || y != 2024 || m != 7 || d != 4 {
		t.Errorf("FirstAfter(2024,1,1) = (%d,%d,%d,%v), want (2024,7,4,true)", y, m, d, ok)
	}

	y, m, d, ok = c.FirstAfter(2024, 12, 25)
	if ok {
		t.Errorf("FirstAfter(2024,12,25) = (%d,%d,%d,%v), want no more members", y, m, d, ok)
	}
}

func TestCalendarSerializeRoundTrip(t *testing.T) {
	c := NewCalendar(2020, 3)
	c.Add(2020, 1, 1)
	c.Add(2021, 7, 4)
	c.Add(2022, 12, 31)

	var buf bytes.Buffer
	if err := c.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	got, err := Deserialize(&buf)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.StartYear() != 2020 || got.YearCount() != 3 {
		t.Fatalf("got StartYear=%d YearCount=%d, want 2020, 3", got.StartYear(), got.YearCount())
	}
	for _, date := range [][3]int{{2020, 1, 1}, {2021, 7, 4}, {2022, 12, 31}} {
		if !got.Contains(date[0], date[1], date[2]) {
			t.Errorf("deserialized calendar missing %v", date)
		}
	}
	if got.Contains(2020, 1, 2) {
		t.Error("deserialized calendar has unexpected member")
	}
}

func TestDeserializeRejectsTruncated(t *testing.T) {
	_, err := Deserialize(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
}

func TestUnion(t *testing.T) {
	a := NewCalendar(2020, 2)
	a.Add(2020, 1, 1)

	b := NewCalendar(2021, 2)
	b.Add(2022, 6, 15)

	u := Union(a, b)
	if !u.Contains(2020, 1, 1) {
		t.Error("union missing date from a")
	}
	if !u.Contains(2022, 6, 15) {
		t.Error("union missing date from b")
	}
}
