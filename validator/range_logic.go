package validator

import "github.com/openhours/ohgo/semantics"

func checkRanges(rule semantics.Rule, index int) []Issue {
	var issues []Issue

	for _, yr := range rule.Selector.Year {
		if yr.To != 0 && yr.To < yr.From {
			issues = append(issues, Issue{Code: CodeYearRangeReversed, Severity: SeverityError, RuleIndex: index,
				Message: "year range end precedes start"})
		}
	}

	for _, mdr := range rule.Selector.Month {
		if !mdr.From.Easter && (mdr.From.Day < 0 || mdr.From.Day > 31) {
			issues = append(issues, Issue{Code: CodeMonthDayOutOfRange, Severity: SeverityError, RuleIndex: index,
				Message: "monthday out of the 1-31 range"})
		}
		if mdr.To.Day != 0 && mdr.To.Month == mdr.From.Month && mdr.To.Day < mdr.From.Day {
			issues = append(issues, Issue{Code: CodeMonthDayOutOfRange, Severity: SeverityError, RuleIndex: index,
				Message: "monthday range end precedes start within the same month"})
		}
	}

	for _, wr := range rule.Selector.Week {
		if wr.From < 1 || wr.From > 53 || (wr.To != 0 && (wr.To < 1 || wr.To > 53)) {
			issues = append(issues, Issue{Code: CodeWeekOutOfRange, Severity: SeverityError, RuleIndex: index,
				Message: "ISO week out of the 1-53 range"})
		}
	}

	if rule.Selector.Weekday != nil {
		for _, wdr := range rule.Selector.Weekday.Ranges {
			for _, n := range wdr.Nth {
				if n == 0 || n < -5 || n > 5 {
					issues = append(issues, Issue{Code: CodeNthOutOfRange, Severity: SeverityError, RuleIndex: index,
						Message: "nth-in-month occurrence must be in [-5, -1] or [1, 5]"})
				}
			}
		}
	}

	return issues
}
