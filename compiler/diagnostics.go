package compiler

import "fmt"

// Diagnostic is a non-fatal warning emitted while lowering a CST (e.g. a
// rule whose selector is empty and so matches every instant).
type Diagnostic struct {
	RuleIndex int
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("rule %d: %s", d.RuleIndex, d.Message)
}

func warn(opts Options, diags *[]Diagnostic, ruleIndex int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	*diags = append(*diags, Diagnostic{RuleIndex: ruleIndex, Message: msg})
	opts.Logger.Warnf("rule %d: %s", ruleIndex, msg)
}
