package selector

import "time"

// MinYear and MaxYear are the inclusive year bounds the system operates
// over: dates before year 1900 or after year 9999 are always reported
// closed.
const (
	MinYear = 1900
	MaxYear = 9999
)

// Matcher is the shared contract every dimension selector implements.
type Matcher interface {
	// Contains reports whether instant is admitted by this selector.
	Contains(instant time.Time) bool

	// NextBoundaryAtOrAfter returns the smallest instant >= instant at
	// which Contains's value changes, or ok == false if no such instant
	// exists at or before the MaxYear cap.
	NextBoundaryAtOrAfter(instant time.Time) (boundary time.Time, ok bool)
}

// outOfBounds reports whether instant falls outside [MinYear, MaxYear].
func outOfBounds(instant time.Time) bool {
	y := instant.Year()
	return y < MinYear || y > MaxYear
}

// capBoundary is the sentinel returned (with ok == false) when a search
// runs off the end of the supported year range.
func capBoundary() (time.Time, bool) {
	return time.Time{}, false
}

// startOfDay truncates instant to 00:00 in its own location.
func startOfDay(instant time.Time) time.Time {
	y, m, d := instant.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, instant.Location())
}

// startOfNextDay returns 00:00 of the day after instant's day.
func startOfNextDay(instant time.Time) time.Time {
	return startOfDay(instant).AddDate(0, 0, 1)
}
