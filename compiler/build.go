package compiler

import (
	"github.com/openhours/ohgo/parser"
	"github.com/openhours/ohgo/semantics"
)

func lowerState(modifier string) semantics.State {
	switch modifier {
	case "off", "closed":
		return semantics.Closed
	case "unknown":
		return semantics.Unknown
	default:
		return semantics.Open
	}
}

func lowerCombinator(sep string, index int) semantics.Combinator {
	if index == 0 {
		return semantics.Override
	}
	switch sep {
	case ",":
		return semantics.Additional
	case "||":
		return semantics.Fallback
	default:
		return semantics.Override
	}
}

func lower(cst *parser.CST, opts Options) (*semantics.Expression, []Diagnostic) {
	var diags []Diagnostic
	expr := &semantics.Expression{Rules: make([]semantics.Rule, 0, len(cst.Rules))}

	for i, r := range cst.Rules {
		rule := semantics.Rule{
			Selector:   r.Selector,
			State:      lowerState(r.Modifier),
			Comment:    r.Comment,
			Combinator: lowerCombinator(r.Sep, i),
		}
		if isEmptySelector(rule.Selector) {
			warn(opts, &diags, i, "empty selector matches every date and time")
		}
		expr.Rules = append(expr.Rules, rule)
	}

	return expr, diags
}

func isEmptySelector(sel semantics.SelectorSequence) bool {
	return !sel.Always &&
		len(sel.Year) == 0 &&
		len(sel.Month) == 0 &&
		len(sel.Week) == 0 &&
		sel.Weekday == nil &&
		len(sel.Time) == 0
}
