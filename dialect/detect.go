package dialect

import "strings"

// DetectRequiredFeatures inspects raw expression text and reports which
// Lenient features, if any, it appears to rely on. It never errors: this
// is a best-effort substring-based classification used for diagnostics,
// not a validity check, and its result does not depend on whether the
// text parses.
func DetectRequiredFeatures(raw string) []Feature {
	var needed []Feature

	if hasMissingSpaceHeuristic(raw) {
		needed = append(needed, AllowMissingSpaces)
	}
	if hasUnknownExtensionHeuristic(raw) {
		needed = append(needed, AllowUnknownExtensionsAsComments)
	}

	return needed
}

// hasMissingSpaceHeuristic looks for a month abbreviation directly
// followed by a digit with no separating space (e.g. "Oct12:00"), which
// the published grammar does not allow. The parser does not consult a
// profile, and it rejects "Oct12:00-18:00".
func hasMissingSpaceHeuristic(raw string) bool {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for _, m := range months {
		idx := strings.Index(raw, m)
		for idx != -1 {
			after := idx + len(m)
			if after < len(raw) && isASCIIDigit(raw[after]) {
				return true
			}
			next := strings.Index(raw[after:], m)
			if next == -1 {
				break
			}
			idx = after + next
		}
	}
	return false
}

// hasUnknownExtensionHeuristic reports text containing the literal
// substring "unknown_" or a double quote directly followed by "||", the
// two patterns it treats as an unsupported extension.
func hasUnknownExtensionHeuristic(raw string) bool {
	return strings.Contains(raw, "unknown_") || strings.Contains(raw, "\"||")
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
