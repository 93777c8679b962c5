// Package ohgo provides a unified API for parsing and evaluating OpenStreetMap
// opening_hours expressions.
//
// This package is the recommended entry point for most users. It provides
// simple, high-level functions for the common case while re-exporting the
// most frequently used types for single-import convenience.
//
// # Quick Start
//
// Parse an expression and ask whether it's open right now:
//
//	expr, err := ohgo.Parse("Mo-Fr 10:00-18:00; Sa-Su 10:00-12:00")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(expr.State(time.Now()))
//
// Find out when the state will next change:
//
//	next, ok := expr.NextChange(context.Background(), time.Now())
//
// Validate an expression without building an Expression:
//
//	if !ohgo.Validate("Mo-Fr 10:00-18:00") {
//	    fmt.Println("invalid expression")
//	}
//
// # Power Users
//
// For advanced use cases requiring custom options, import the underlying
// packages directly:
//
//   - github.com/openhours/ohgo/compiler - custom dialect profile, parse diagnostics
//   - github.com/openhours/ohgo/normalize - canonicalization with a change report
//   - github.com/openhours/ohgo/validator - the standalone semantic linter
//   - github.com/openhours/ohgo/encoder - streaming intervals() to text
package ohgo

import (
	"context"
	"iter"
	"time"

	"github.com/openhours/ohgo/compiler"
	"github.com/openhours/ohgo/encoder"
	"github.com/openhours/ohgo/eval"
	"github.com/openhours/ohgo/parser"
	"github.com/openhours/ohgo/semantics"
	"github.com/openhours/ohgo/validator"
)

// Type re-exports for single-import convenience.
type (
	// State is the tri-state result of evaluating an expression (Open,
	// Closed, or Unknown).
	State = semantics.State

	// EvaluationContext carries the location, coordinates, and holidays
	// collaborator an evaluation needs.
	EvaluationContext = semantics.EvaluationContext

	// Result pairs a State with the comment of the rule that produced it.
	Result = eval.Result

	// Interval is one maximal run of constant state from Intervals.
	Interval = eval.Interval

	// ParseError reports a failure to parse an expression.
	ParseError = parser.ParseError

	// Issue is one finding from validator.Check.
	Issue = validator.Issue
)

const (
	Open    = semantics.Open
	Closed  = semantics.Closed
	Unknown = semantics.Unknown
)

// Expression is a parsed, evaluatable opening_hours expression, bound to
// an EvaluationContext (stable external surface).
type Expression struct {
	expr *semantics.Expression
	ctx  semantics.EvaluationContext
	eval *eval.Evaluator
}

// Parse tokenizes, parses, and compiles text using the default
// EvaluationContext (local system timezone, no coordinates, no holidays
// collaborator).
func Parse(text string) (*Expression, error) {
	return ParseWithContext(text, semantics.DefaultEvaluationContext())
}

// ParseWithContext is Parse with an explicit EvaluationContext, e.g. one
// built via EvaluationContext.WithCoordinates for sun-event support.
func ParseWithContext(text string, ctx semantics.EvaluationContext) (*Expression, error) {
	expr, err := compiler.Parse(text)
	if err != nil {
		return nil, err
	}
	return &Expression{expr: expr, ctx: ctx, eval: eval.New(expr, ctx)}, nil
}

// Validate reports whether text parses without error.
func Validate(text string) bool {
	return validator.Validate(text)
}

// State returns the expression's state at instant.
func (e *Expression) State(instant time.Time) Result {
	return e.eval.State(instant)
}

// NextChange returns the earliest instant strictly after instant at which
// State's result differs, or ok=false if the state never changes. ctx is
// checked for cancellation between search steps.
func (e *Expression) NextChange(ctx context.Context, instant time.Time) (time.Time, bool) {
	return e.eval.NextChange(ctx, instant)
}

// Intervals lazily yields every maximal constant-state run over
// [from, until).
func (e *Expression) Intervals(ctx context.Context, from, until time.Time) iter.Seq[Interval] {
	return e.eval.Intervals(ctx, from, until)
}

// Check runs the standalone semantic linter over the expression.
func (e *Expression) Check() []Issue {
	return validator.Check(e.expr)
}

// String renders the expression's canonical opening_hours text. By the
// Round-trip property, Parse(expr.String()) must be state()-equivalent to
// expr.
func (e *Expression) String() string {
	return encoder.ToString(e.expr)
}

// Dump returns a structured, non-canonical debug dump of the parsed rule
// sequence (not meant to round-trip through Parse; see String for that).
func (e *Expression) Dump() string {
	return e.expr.Dump()
}
