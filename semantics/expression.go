package semantics

import "strconv"

// Rule is one selector+modifier+comment unit combined via a Combinator.
type Rule struct {
	Selector   SelectorSequence
	State      State
	Comment    string
	Combinator Combinator
}

// Expression is a non-empty ordered list of rules. It is
// immutable once built by the compiler package; readers may evaluate it
// concurrently without synchronization.
type Expression struct {
	Rules []Rule
}

// Dump renders a verbose, human-readable multi-line description of e,
// useful for debugging a compiled expression — distinct from
// Expression.String's canonical round-trippable text form, which lives in
// the encoder package.
func (e *Expression) Dump() string {
	var out []byte
	for i, rule := range e.Rules {
		out = append(out, dumpRule(i, rule)...)
	}
	if len(out) == 0 {
		return "(empty expression)\n"
	}
	return string(out)
}

func dumpRule(index int, rule Rule) string {
	sep := ";"
	switch rule.Combinator {
	case Additional:
		sep = ","
	case Fallback:
		sep = "||"
	}
	line := "rule " + strconv.Itoa(index) + " [" + sep + "] state=" + rule.State.String()
	if rule.Selector.Always {
		line += " selector=24/7"
	}
	if rule.Comment != "" {
		line += " comment=" + rule.Comment
	}
	return line + "\n"
}
