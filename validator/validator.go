package validator

import (
	"github.com/openhours/ohgo/compiler"
	"github.com/openhours/ohgo/semantics"
)

// Validate reports whether text parses and compiles without error. It
// does not run the deeper Check linter: a syntactically and semantically
// well-formed expression can still carry a Check warning (an unreachable
// rule, say) without being invalid.
func Validate(text string) bool {
	_, err := compiler.Parse(text)
	return err == nil
}

// Check runs the standalone semantic linter over an already-compiled
// expression, returning every Issue found. An empty result means no
// problems were detected, not that none could exist — some checks, e.g.
// full reachability analysis, are intentionally approximate.
func Check(expr *semantics.Expression) []Issue {
	var issues []Issue
	for i, rule := range expr.Rules {
		issues = append(issues, checkRanges(rule, i)...)
	}
	issues = append(issues, checkReachability(expr)...)
	return issues
}
