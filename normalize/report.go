package normalize

import "fmt"

// Report summarizes what a Normalize call changed, mirroring the
// teacher's ConversionReport.
type Report struct {
	RulesBefore   int
	RulesAfter    int
	RangesDeduped int
	DroppedRules  int
}

func (r Report) String() string {
	return fmt.Sprintf(
		"normalize: %d rule(s) -> %d rule(s) (%d dropped, %d duplicate range(s) removed)",
		r.RulesBefore, r.RulesAfter, r.DroppedRules, r.RangesDeduped,
	)
}
