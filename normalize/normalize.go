package normalize

import (
	"sort"

	"github.com/openhours/ohgo/semantics"
)

// Normalize returns a canonicalized copy of expr: each dimension's ranges
// sorted and exact duplicates removed, and rules whose weekday selector
// has no ranges and no holidays dropped. Overlapping or adjacent ranges
// are not merged, and an expression equivalent to "24/7" is not
// collapsed to a single Always rule.
func Normalize(expr *semantics.Expression) (*semantics.Expression, Report) {
	report := Report{RulesBefore: len(expr.Rules)}
	out := deepCopy(expr)

	var kept []semantics.Rule
	for _, rule := range out.Rules {
		rule.Selector.Year, report.RangesDeduped = dedupeYears(sortYears(rule.Selector.Year), report.RangesDeduped)
		rule.Selector.Month, report.RangesDeduped = dedupeMonths(sortMonths(rule.Selector.Month), report.RangesDeduped)
		rule.Selector.Week, report.RangesDeduped = dedupeWeeks(sortWeeks(rule.Selector.Week), report.RangesDeduped)
		rule.Selector.Time, report.RangesDeduped = dedupeTimes(sortTimes(rule.Selector.Time), report.RangesDeduped)
		if rule.Selector.Weekday != nil {
			rule.Selector.Weekday.Ranges, report.RangesDeduped = dedupeWeekdays(sortWeekdays(rule.Selector.Weekday.Ranges), report.RangesDeduped)
		}

		if isDeadRule(rule) {
			report.DroppedRules++
			continue
		}
		kept = append(kept, rule)
	}

	out.Rules = kept
	report.RulesAfter = len(kept)
	return out, report
}

// isDeadRule reports a rule that can never match anything: a non-Always
// selector where every populated dimension is an empty slice is fine
// (empty dimension means "any"), but a Weekday selector present with zero
// ranges and zero holidays never matches.
func isDeadRule(rule semantics.Rule) bool {
	wd := rule.Selector.Weekday
	return wd != nil && len(wd.Ranges) == 0 && len(wd.Holidays) == 0
}

func sortYears(rs []semantics.YearRange) []semantics.YearRange {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].From < rs[j].From })
	return rs
}

func dedupeYears(rs []semantics.YearRange, deduped int) ([]semantics.YearRange, int) {
	var out []semantics.YearRange
	for _, r := range rs {
		if len(out) > 0 && out[len(out)-1] == r {
			deduped++
			continue
		}
		out = append(out, r)
	}
	return out, deduped
}

func sortMonths(rs []semantics.MonthDayRange) []semantics.MonthDayRange {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i].From, rs[j].From
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Day < b.Day
	})
	return rs
}

func dedupeMonths(rs []semantics.MonthDayRange, deduped int) ([]semantics.MonthDayRange, int) {
	var out []semantics.MonthDayRange
	for _, r := range rs {
		if len(out) > 0 && out[len(out)-1] == r {
			deduped++
			continue
		}
		out = append(out, r)
	}
	return out, deduped
}

func sortWeeks(rs []semantics.WeekRange) []semantics.WeekRange {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].From < rs[j].From })
	return rs
}

func dedupeWeeks(rs []semantics.WeekRange, deduped int) ([]semantics.WeekRange, int) {
	var out []semantics.WeekRange
	for _, r := range rs {
		if len(out) > 0 && out[len(out)-1] == r {
			deduped++
			continue
		}
		out = append(out, r)
	}
	return out, deduped
}

func sortWeekdays(rs []semantics.WeekdayRange) []semantics.WeekdayRange {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].From < rs[j].From })
	return rs
}

func dedupeWeekdays(rs []semantics.WeekdayRange, deduped int) ([]semantics.WeekdayRange, int) {
	var out []semantics.WeekdayRange
	for i, r := range rs {
		if i > 0 && sameWeekdayRange(out[len(out)-1], r) {
			deduped++
			continue
		}
		out = append(out, r)
	}
	return out, deduped
}

func sameWeekdayRange(a, b semantics.WeekdayRange) bool {
	if a.From != b.From || a.To != b.To || len(a.Nth) != len(b.Nth) {
		return false
	}
	for i := range a.Nth {
		if a.Nth[i] != b.Nth[i] {
			return false
		}
	}
	return true
}

func sortTimes(rs []semantics.TimeRange) []semantics.TimeRange {
	sort.SliceStable(rs, func(i, j int) bool {
		return clockOf(rs[i].From) < clockOf(rs[j].From)
	})
	return rs
}

func clockOf(p semantics.TimePoint) int {
	if p.Clock != nil {
		return int(*p.Clock)
	}
	return -1 // variable (sun-event) times sort before fixed clock times
}

func dedupeTimes(rs []semantics.TimeRange, deduped int) ([]semantics.TimeRange, int) {
	var out []semantics.TimeRange
	for _, r := range rs {
		if len(out) > 0 && sameTimeRange(out[len(out)-1], r) {
			deduped++
			continue
		}
		out = append(out, r)
	}
	return out, deduped
}

func sameTimeRange(a, b semantics.TimeRange) bool {
	return samePoint(a.From, b.From) && samePoint(a.To, b.To) && a.Step == b.Step && a.OpenEnded == b.OpenEnded
}

func samePoint(a, b semantics.TimePoint) bool {
	switch {
	case a.Clock != nil && b.Clock != nil:
		return *a.Clock == *b.Clock
	case a.Variable != nil && b.Variable != nil:
		return *a.Variable == *b.Variable
	default:
		return a.Clock == nil && b.Clock == nil && a.Variable == nil && b.Variable == nil
	}
}
