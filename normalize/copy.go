package normalize

import "github.com/openhours/ohgo/semantics"

// deepCopy clones expr so normalization never mutates the caller's tree.
func deepCopy(expr *semantics.Expression) *semantics.Expression {
	out := &semantics.Expression{Rules: make([]semantics.Rule, len(expr.Rules))}
	for i, r := range expr.Rules {
		out.Rules[i] = copyRule(r)
	}
	return out
}

func copyRule(r semantics.Rule) semantics.Rule {
	cp := r
	cp.Selector = copySelector(r.Selector)
	return cp
}

func copySelector(s semantics.SelectorSequence) semantics.SelectorSequence {
	cp := s
	cp.Year = append([]semantics.YearRange(nil), s.Year...)
	cp.Month = append([]semantics.MonthDayRange(nil), s.Month...)
	cp.Week = append([]semantics.WeekRange(nil), s.Week...)
	cp.Time = append([]semantics.TimeRange(nil), s.Time...)
	if s.Weekday != nil {
		wd := *s.Weekday
		wd.Ranges = append([]semantics.WeekdayRange(nil), s.Weekday.Ranges...)
		wd.Holidays = append([]semantics.HolidayRef(nil), s.Weekday.Holidays...)
		cp.Weekday = &wd
	}
	return cp
}
