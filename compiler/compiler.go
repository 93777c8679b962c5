package compiler

import (
	"github.com/openhours/ohgo/parser"
	"github.com/openhours/ohgo/semantics"
)

// Parse tokenizes, parses, and lowers text into an Expression using
// default (lenient) options.
func Parse(text string) (*semantics.Expression, error) {
	expr, _, err := ParseWithOptions(text, DefaultOptions())
	return expr, err
}

// ParseWithOptions is Parse with explicit Options, returning any
// non-fatal diagnostics collected while lowering.
func ParseWithOptions(text string, opts Options) (*semantics.Expression, []Diagnostic, error) {
	opts = opts.resolve()

	cst, err := parser.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	expr, diags := lower(cst, opts)
	return expr, diags, nil
}
