// Package encoder writes a semantics.Expression back to its canonical
// opening_hours text (Round-trip property: parsing the output
// of ToString must reproduce an equivalent Expression), and streams an
// evaluator's intervals() sequence to human-readable text.
//
// Example usage:
//
//	var buf strings.Builder
//	if err := encoder.Encode(&buf, expr); err != nil {
//	    log.Fatal(err)
//	}
package encoder
