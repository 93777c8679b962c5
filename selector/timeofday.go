package selector

import (
	"sort"
	"time"

	"github.com/openhours/ohgo/semantics"
	"github.com/openhours/ohgo/suncalc"
)

// MinutesPerDay is the number of minutes in one day.
const MinutesPerDay = semantics.MinutesPerDay

// TimeOfDayMatcher implements the TimeOfDay dimension:
// "boundaries at the minute (or second, for sun events, truncated to the
// minute). Extended times past 24:00 contribute a match on the next day
// 00:00-... slice."
type TimeOfDayMatcher struct {
	ranges         []semantics.TimeRange
	hasCoordinates bool
	lat, lon       float64
}

// NewTimeOfDayMatcher builds a TimeOfDayMatcher. When hasCoordinates is
// false, any range with a variable (sun-relative) endpoint never matches:
// a sun-event failure degrades to "this dimension doesn't match that day"
// rather than an error.
func NewTimeOfDayMatcher(ranges []semantics.TimeRange, hasCoordinates bool, lat, lon float64) *TimeOfDayMatcher {
	return &TimeOfDayMatcher{ranges: ranges, hasCoordinates: hasCoordinates, lat: lat, lon: lon}
}

// resolveMinutes returns the minutes-from-midnight a TimePoint denotes on
// (year, month, day), or ok == false if it cannot be resolved (a variable
// time with no coordinates, or a polar sun-event failure).
func (m *TimeOfDayMatcher) resolveMinutes(p semantics.TimePoint, year, month, day int) (int, bool) {
	if p.Clock != nil {
		return int(*p.Clock), true
	}
	if p.Variable != nil {
		if !m.hasCoordinates {
			return 0, false
		}
		times := suncalc.Compute(year, month, day, m.lat, m.lon)
		offset, ok := times.Offset(p.Variable.Event)
		if !ok {
			return 0, false
		}
		minutes := int(offset/time.Minute) + int(p.Variable.Offset/time.Minute)
		return minutes, true
	}
	return 0, false
}

// window is one contiguous or stepped span of minutes-from-midnight for a
// single day, possibly extending past 1440 (next day).
type window struct {
	from, to int  // [from, to); to may exceed 1440
	step     int  // 0 means continuous range; otherwise discrete points from..to by step
}

func (m *TimeOfDayMatcher) windowsForDay(year, month, day int) []window {
	var out []window
	for _, r := range m.ranges {
		from, ok := m.resolveMinutes(r.From, year, month, day)
		if !ok {
			continue
		}
		to := MinutesPerDay
		if !r.OpenEnded {
			resolvedTo, ok := m.resolveMinutes(r.To, year, month, day)
			if !ok {
				continue
			}
			to = resolvedTo
			if to <= from {
				// Spills into the next day ("if t2 < t1 with
				// both being absolute clock times, the range spills").
				to += MinutesPerDay
			}
		}
		out = append(out, window{from: from, to: to, step: int(r.Step / time.Minute)})
	}
	return out
}

func windowContains(w window, minutes int) bool {
	if minutes < w.from || minutes >= w.to {
		return false
	}
	if w.step <= 0 {
		return true
	}
	return (minutes-w.from)%w.step == 0
}

// Contains implements Matcher.
func (m *TimeOfDayMatcher) Contains(instant time.Time) bool {
	if outOfBounds(instant) {
		return false
	}
	if len(m.ranges) == 0 {
		// Empty-date equivalence: a TimeOfDay dimension with
		// no ranges imposes no constraint, matching any time.
		return true
	}

	year, month, day := instant.Date()
	minutesToday := instant.Hour()*60 + instant.Minute()

	for _, w := range m.windowsForDay(year, int(month), day) {
		if windowContains(w, minutesToday) {
			return true
		}
	}

	yesterday := instant.AddDate(0, 0, -1)
	yy, ym, yd := yesterday.Date()
	for _, w := range m.windowsForDay(yy, int(ym), yd) {
		if w.to > MinutesPerDay && windowContains(w, minutesToday+MinutesPerDay) {
			return true
		}
	}

	return false
}

// boundaryCandidates returns the sorted, deduplicated set of
// minutes-from-today's-midnight at which Contains could change value,
// considering both today's and yesterday's windows.
func (m *TimeOfDayMatcher) boundaryCandidates(year, month, day int) []int {
	seen := make(map[int]struct{})
	add := func(minute int) {
		if minute >= 0 && minute < MinutesPerDay {
			seen[minute] = struct{}{}
		}
	}

	for _, w := range m.windowsForDay(year, month, day) {
		add(w.from)
		add(w.to)
		if w.step > 0 {
			for t := w.from; t < w.to; t += w.step {
				add(t)
				add(t + 1)
			}
		}
	}

	yesterday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	yy, ym, yd := yesterday.Date()
	for _, w := range m.windowsForDay(yy, int(ym), yd) {
		if w.to > MinutesPerDay {
			add(w.to - MinutesPerDay)
		}
	}

	out := make([]int, 0, len(seen))
	for minute := range seen {
		out = append(out, minute)
	}
	sort.Ints(out)
	return out
}

// NextBoundaryAtOrAfter implements Matcher. It walks forward day by day
// (sun-event windows shift slightly each day, so boundaries are
// recomputed per day rather than assumed periodic), checking each day's
// candidate boundary minutes for the first one at which Contains differs
// from its value at instant.
func (m *TimeOfDayMatcher) NextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
	if outOfBounds(instant) {
		return capBoundary()
	}
	cur := m.Contains(instant)

	cursorDay := startOfDay(instant)
	minutesFrom := instant.Hour()*60 + instant.Minute() + 1

	for cursorDay.Year() <= MaxYear {
		year, month, day := cursorDay.Date()
		for _, minute := range m.boundaryCandidates(year, int(month), day) {
			if minute < minutesFrom {
				continue
			}
			candidate := cursorDay.Add(time.Duration(minute) * time.Minute)
			if m.Contains(candidate) != cur {
				return candidate, true
			}
		}
		cursorDay = cursorDay.AddDate(0, 0, 1)
		minutesFrom = 0
	}
	return capBoundary()
}
