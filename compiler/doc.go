// Package compiler lowers a parsed expression (package parser's CST) into
// the semantic model of package semantics, resolving the defaults the
// grammar leaves implicit: an omitted modifier means Open, an omitted
// combinator before the first rule is Override, and "24/7" short-circuits
// to a single always-selector rule.
//
// Example usage:
//
//	expr, err := compiler.Parse("Mo-Fr 10:00-18:00; Sa-Su 10:00-12:00")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(expr.Dump())
package compiler
