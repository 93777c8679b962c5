// Package parser tokenizes and parses an opening_hours expression string
// into a concrete syntax tree, which the compiler package
// lowers into the semantic model of package semantics.
//
// The grammar is ambiguous at two well-known points; the parser resolves
// both with documented precedence rather than backtracking:
//
//  1. A bare 4-digit year at the start of a selector may begin either a
//     year selector or a monthday selector. monthday_selector is tried
//     first; it only succeeds if a month token follows directly.
//  2. A leading month name followed by HH:MM is ambiguous with a
//     monthday day-number. The time-of-day interpretation wins; a
//     monthday's day-number is required to contain no colon.
//
// Example usage:
//
//	rules, err := parser.Parse("Mo-Fr 10:00-18:00; Sa-Su 10:00-12:00")
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Position, perr.Expected)
//	    }
//	}
package parser
