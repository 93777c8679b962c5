package semantics

import (
	"time"

	"github.com/openhours/ohgo/suncalc"
)

// YearRange is the Year dimension's range primitive ("Year
// range"): y1 | y1-y2 | y1-y2/step | y1+.
type YearRange struct {
	From      int
	To        int // meaningful only when To != 0; equal to From for a bare year
	Step      int // 0 means "no step" (every year in [From, To])
	OpenEnded bool
}

// WeekdayShift anchors a MonthDayRange endpoint to the nearest occurrence
// of a weekday on or after (Forward) or before (!Forward) the plain date,
// e.g. "first Monday on or after."
type WeekdayShift struct {
	Weekday time.Weekday
	Forward bool
}

// MonthDayPoint is one endpoint of a MonthDayRange: either an explicit
// (year?, month, day) anchor or Easter, each with an optional signed
// day-offset and weekday-shift applied afterward.
type MonthDayPoint struct {
	Year  int // 0 means unanchored to a specific year
	Month int // 1-12; 0 when Easter is set
	Day   int // 1-31; 0 when Easter is set and no day-offset anchors it

	Easter bool

	DayOffset int
	Shift     *WeekdayShift
}

// MonthDayRange is the MonthDay dimension's range primitive. A month-only
// or month-span selector is represented with Day == 0 on both endpoints.
type MonthDayRange struct {
	From, To  MonthDayPoint
	OpenEnded bool // trailing "+": "from this point onward, same year"
}

// WeekRange is the Week dimension's range primitive: ISO week number
// 1-53, optional end and step.
type WeekRange struct {
	From, To int
	Step     int // 0 means "no step"
}

// WeekdayRange is one union member of a weekday selector: a span of
// weekdays (From==To for a single day), optionally restricted to specific
// occurrences within the month, and shifted by a global day offset.
type WeekdayRange struct {
	From, To time.Weekday
	// Nth holds 1-based occurrence indices within the month; negative
	// values count from the end (-1 = last). Empty means "every
	// occurrence."
	Nth       []int
	DayOffset int
}

// HolidayKind distinguishes the two holiday categories a Weekday selector
// may reference.
type HolidayKind int

const (
	PublicHoliday HolidayKind = iota
	SchoolHoliday
)

func (k HolidayKind) String() string {
	if k == SchoolHoliday {
		return "school holiday"
	}
	return "public holiday"
}

// HolidayRef is a holiday tag appearing in a Weekday selector, with its
// optional day-offset ("Weekday selector").
type HolidayRef struct {
	Kind      HolidayKind
	DayOffset int
}

// WeekdaySelector is the Weekday/Holiday dimension: a union of weekday
// ranges, a list of holiday tags, or both together.
type WeekdaySelector struct {
	Ranges   []WeekdayRange
	Holidays []HolidayRef
}

// ClockTime is a plain clock time in minutes since midnight. Values above
// 24*60 are "extended" times meaning "this many minutes into the next
// day" and are only valid as a range's closing endpoint.
type ClockTime int

const (
	MinutesPerDay    = 24 * 60
	MaxExtendedClock = 48 * 60
)

// VariableTime is a sun event plus a signed clock offset.
type VariableTime struct {
	Event  suncalc.Event
	Offset time.Duration // may be negative
}

// TimePoint is one endpoint of a TimeRange: either a fixed clock time or
// a variable (sun-relative) time.
type TimePoint struct {
	Clock    *ClockTime
	Variable *VariableTime
}

// TimeRange is the TimeOfDay dimension's range primitive ("Time
// range").
type TimeRange struct {
	From, To  TimePoint
	Step      time.Duration // 0 means "no step"
	OpenEnded bool          // "t1+": until end of day
}

// SelectorSequence is the conjunction of up to five dimension selectors
// that restrict a rule. A dimension left nil imposes no
// constraint. Always is the sentinel for the literal "24/7" expression
// and, when set, every other field is ignored.
type SelectorSequence struct {
	Always bool

	Year    []YearRange
	Month   []MonthDayRange
	Week    []WeekRange
	Weekday *WeekdaySelector
	Time    []TimeRange
}
