package parser

import (
	"strings"
	"time"

	"github.com/openhours/ohgo/suncalc"
)

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var weekdayNames = map[string]time.Weekday{
	"mo": time.Monday, "tu": time.Tuesday, "we": time.Wednesday,
	"th": time.Thursday, "fr": time.Friday, "sa": time.Saturday, "su": time.Sunday,
}

var sunEventNames = map[string]suncalc.Event{
	"dawn": suncalc.Dawn, "sunrise": suncalc.Sunrise, "sunset": suncalc.Sunset, "dusk": suncalc.Dusk,
}

// monthAbbrev returns the month number for a 3-letter (case-insensitive)
// abbreviation prefix of tok, and whether tok begins with one.
func monthAbbrev(tok string) (int, bool) {
	if len(tok) < 3 {
		return 0, false
	}
	m, ok := monthNames[strings.ToLower(tok[:3])]
	return m, ok
}

// weekdayAbbrev returns the time.Weekday for a 2-letter (case-insensitive)
// abbreviation prefix of tok, and whether tok begins with one.
func weekdayAbbrev(tok string) (time.Weekday, bool) {
	if len(tok) < 2 {
		return 0, false
	}
	wd, ok := weekdayNames[strings.ToLower(tok[:2])]
	return wd, ok
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isYearToken(tok string) bool {
	core := strings.TrimSuffix(tok, "+")
	if idx := strings.IndexByte(core, '-'); idx > 0 {
		core = core[:idx]
	}
	if idx := strings.IndexByte(core, '/'); idx > 0 {
		core = core[:idx]
	}
	return len(core) == 4 && isAllDigits(core)
}

// splitGluedYear splits a token like "2099Mo-Su" into its leading 4-digit
// year and the remainder, for the common real-world case where a selector
// has no space between the year and the selector that anchors it.
// strings.Fields alone cannot see this boundary since there is no
// whitespace to split on. It does not fire on a genuine year token such
// as "2020-2022", "2020+", or "2020/2", where the character right after
// the 4-digit run is itself part of the year grammar.
func splitGluedYear(tok string) (year, rest string, ok bool) {
	if len(tok) <= 4 || !isAllDigits(tok[:4]) {
		return "", "", false
	}
	switch tok[4] {
	case '-', '+', '/':
		return "", "", false
	}
	if tok[4] >= '0' && tok[4] <= '9' {
		return "", "", false
	}
	return tok[:4], tok[4:], true
}

func isTimeToken(tok string) bool {
	return strings.ContainsRune(tok, ':') || hasSunEventPrefix(tok)
}

func hasSunEventPrefix(tok string) bool {
	lower := strings.ToLower(tok)
	for name := range sunEventNames {
		if strings.HasPrefix(lower, name) {
			return true
		}
	}
	return false
}
