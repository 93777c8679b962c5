package eval

import (
	"time"

	"github.com/openhours/ohgo/holidays"
	"github.com/openhours/ohgo/selector"
	"github.com/openhours/ohgo/semantics"
)

// ruleMatcher is the conjunction of a rule's present dimension matchers
// ("Dimensions absent from a rule impose no constraint").
type ruleMatcher struct {
	always    bool
	year      *selector.YearMatcher
	monthday  *selector.MonthDayMatcher
	week      *selector.WeekMatcher
	weekday   *selector.WeekdayMatcher
	timeOfDay *selector.TimeOfDayMatcher
}

func buildRuleMatcher(sel semantics.SelectorSequence, ctx semantics.EvaluationContext, holidaySet holidays.Set) ruleMatcher {
	if sel.Always {
		return ruleMatcher{always: true}
	}

	rm := ruleMatcher{}
	if len(sel.Year) > 0 {
		rm.year = selector.NewYearMatcher(sel.Year)
	}
	if len(sel.Month) > 0 {
		rm.monthday = selector.NewMonthDayMatcher(sel.Month)
	}
	if len(sel.Week) > 0 {
		rm.week = selector.NewWeekMatcher(sel.Week)
	}
	if sel.Weekday != nil {
		rm.weekday = selector.NewWeekdayMatcher(sel.Weekday, holidaySet)
	}
	// A TimeOfDay matcher is always built, even with zero ranges: an
	// empty TimeOfDay dimension matches every time of day, the time-axis
	// analogue of an absent selector imposing no constraint.
	rm.timeOfDay = selector.NewTimeOfDayMatcher(sel.Time, ctx.HasCoordinates, ctx.Lat, ctx.Lon)

	return rm
}

// dims returns the present dimension matchers, in a fixed evaluation
// order, as the generic selector.Matcher interface.
func (rm ruleMatcher) dims() []selector.Matcher {
	var out []selector.Matcher
	if rm.year != nil {
		out = append(out, rm.year)
	}
	if rm.monthday != nil {
		out = append(out, rm.monthday)
	}
	if rm.week != nil {
		out = append(out, rm.week)
	}
	if rm.weekday != nil {
		out = append(out, rm.weekday)
	}
	if rm.timeOfDay != nil {
		out = append(out, rm.timeOfDay)
	}
	return out
}

// contains reports whether every present dimension admits instant.
func (rm ruleMatcher) contains(instant time.Time) bool {
	if rm.always {
		return true
	}
	for _, d := range rm.dims() {
		if !d.Contains(instant) {
			return false
		}
	}
	return true
}

// nextBoundaryAtOrAfter returns the earliest instant after instant at
// which this rule's overall membership could change. Since a rule is a
// conjunction, a rule that does not match cannot start matching before
// every dimension that rejects instant has flipped, so the latest of those
// dimensions' boundaries is returned (none if one of them never flips).
// A matching rule can stop matching as soon as any present dimension
// flips, so the earliest boundary is returned. An Always rule never
// changes.
func (rm ruleMatcher) nextBoundaryAtOrAfter(instant time.Time) (time.Time, bool) {
	if rm.always {
		return time.Time{}, false
	}
	var (
		best  time.Time
		found bool
	)
	for _, d := range rm.dims() {
		if d.Contains(instant) {
			continue
		}
		boundary, ok := d.NextBoundaryAtOrAfter(instant)
		if !ok {
			return time.Time{}, false
		}
		if !found || boundary.After(best) {
			best, found = boundary, true
		}
	}
	if found {
		return best, true
	}
	for _, d := range rm.dims() {
		boundary, ok := d.NextBoundaryAtOrAfter(instant)
		if !ok {
			continue
		}
		if !found || boundary.Before(best) {
			best, found = boundary, true
		}
	}
	return best, found
}
