// Package normalize canonicalizes a semantics.Expression: sorting ranges
// within each selector dimension, removing exact duplicates, and dropping
// rules that can never match. It does not merge overlapping ranges or
// collapse a "24/7"-equivalent expression into a single Always rule.
// Normalization is idempotent and must not change state()/next_change()
// results for any instant; Validate spot-checks that invariant.
//
// Basic usage:
//
//	normalized, report := normalize.Normalize(expr)
//	fmt.Println(report)
package normalize
