package validator

import (
	"testing"

	"github.com/openhours/ohgo/compiler"
	"github.com/openhours/ohgo/semantics"
)

func TestValidateAcceptsWellFormedExpression(t *testing.T) {
	if !Validate("Mo-Fr 10:00-18:00") {
		t.Error("Validate() = false, want true")
	}
}

func TestValidateRejectsSyntaxError(t *testing.T) {
	if Validate("") {
		t.Error("Validate() = true, want false for an empty expression")
	}
}

func TestCheckFlagsReversedYearRange(t *testing.T) {
	expr := &semantics.Expression{Rules: []semantics.Rule{
		{Selector: semantics.SelectorSequence{Year: []semantics.YearRange{{From: 2024, To: 2020}}}, State: semantics.Open, Combinator: semantics.Override},
	}}
	issues := Check(expr)
	if len(issues) != 1 || issues[0].Code != CodeYearRangeReversed {
		t.Fatalf("Check() = %+v, want one CodeYearRangeReversed issue", issues)
	}
}

func TestCheckFlagsUnreachableRuleAfterAlwaysOverride(t *testing.T) {
	expr, err := compiler.Parse("24/7 || Mo off")
	if err != nil {
		t.Fatalf("compiler.Parse() error = %v", err)
	}
	issues := Check(expr)
	found := false
	for _, iss := range issues {
		if iss.Code == CodeUnreachableRule {
			found = true
		}
	}
	if !found {
		t.Errorf("Check() = %+v, want a CodeUnreachableRule issue for the Mo rule", issues)
	}
}

func TestCheckEmptyOnCleanExpression(t *testing.T) {
	expr, err := compiler.Parse("Mo-Fr 10:00-18:00")
	if err != nil {
		t.Fatalf("compiler.Parse() error = %v", err)
	}
	if issues := Check(expr); len(issues) != 0 {
		t.Errorf("Check() = %+v, want none", issues)
	}
}
