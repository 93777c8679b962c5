package validator

import "github.com/openhours/ohgo/semantics"

// checkReachability flags a weekday selector that can never match (one
// with no Ranges and no Holidays) and any Fallback rule made unreachable
// by an earlier unconditional (Always, Override) rule.
func checkReachability(expr *semantics.Expression) []Issue {
	var issues []Issue

	sawUnconditionalOverride := false
	for i, rule := range expr.Rules {
		if wd := rule.Selector.Weekday; wd != nil && len(wd.Ranges) == 0 && len(wd.Holidays) == 0 {
			issues = append(issues, Issue{Code: CodeUnreachableWeekday, Severity: SeverityWarning, RuleIndex: i,
				Message: "weekday selector has no ranges or holidays and can never match"})
		}

		if sawUnconditionalOverride && rule.Combinator == semantics.Fallback {
			issues = append(issues, Issue{Code: CodeUnreachableRule, Severity: SeverityWarning, RuleIndex: i,
				Message: "an earlier unconditional rule already matches every instant, so this fallback rule never applies"})
		}

		if rule.Selector.Always && rule.Combinator == semantics.Override {
			sawUnconditionalOverride = true
		}
	}

	return issues
}
