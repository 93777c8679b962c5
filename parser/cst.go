package parser

import (
	"strconv"
	"strings"
	"time"

	"github.com/openhours/ohgo/semantics"
)

// CST is the concrete syntax tree produced by Parse: one entry per rule,
// in source order, each still carrying its raw separator and modifier
// token for the compiler package to lower into semantics.Combinator and
// semantics.State.
type CST struct {
	Rules []CSTRule
}

// CSTRule is one rule_sequence member: a selector sequence plus the raw
// modifier/comment text and the separator token that preceded it ("" for
// the first rule).
type CSTRule struct {
	Selector semantics.SelectorSequence
	Modifier string
	Comment  string
	Sep      string
}

// Parse tokenizes and parses text into a CST. Empty and
// whitespace-only input is an EmptyExpression error.
func Parse(text string) (*CST, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, newParseError(EmptyExpression, 0, "a non-empty expression", text)
	}

	segments := splitTopLevel(trimmed)
	cst := &CST{Rules: make([]CSTRule, 0, len(segments))}
	for _, seg := range segments {
		rule, err := parseRuleSegment(seg.text)
		if err != nil {
			return nil, err
		}
		rule.Sep = seg.sep
		cst.Rules = append(cst.Rules, rule)
	}
	return cst, nil
}

type segment struct {
	sep  string
	text string
}

// splitTopLevel splits text on top-level ";", ",", and "||" separators,
// respecting "[...]" nesting and quoted comments, and treating a comma
// with no adjacent whitespace as part of the preceding token (e.g. the
// weekday list "Mo,We,Fr") rather than a rule separator.
func splitTopLevel(text string) []segment {
	var out []segment
	var buf strings.Builder
	sep := ""
	depth := 0
	inQuote := false

	flush := func() {
		out = append(out, segment{sep: sep, text: buf.String()})
		buf.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			inQuote = !inQuote
			buf.WriteRune(r)
		case inQuote:
			buf.WriteRune(r)
		case r == '[':
			depth++
			buf.WriteRune(r)
		case r == ']':
			if depth > 0 {
				depth--
			}
			buf.WriteRune(r)
		case depth == 0 && r == '|' && i+1 < len(runes) && runes[i+1] == '|':
			flush()
			sep = "||"
			i++
		case depth == 0 && r == ';':
			flush()
			sep = ";"
		case depth == 0 && r == ',' && (i == 0 || isSpaceRune(runes[i-1]) || (i+1 < len(runes) && isSpaceRune(runes[i+1]))):
			flush()
			sep = ","
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return out
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}

// expandGluedYearTokens splits any field that fuses a leading 4-digit
// year onto an adjacent selector token (see splitGluedYear) so field
// classification sees the year and the selector it anchors as separate
// tokens, the same as if a space had separated them.
func expandGluedYearTokens(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if year, rest, ok := splitGluedYear(f); ok {
			out = append(out, year, rest)
		} else {
			out = append(out, f)
		}
	}
	return out
}

var modifierTokens = map[string]string{
	"open": "open", "closed": "closed", "off": "off", "unknown": "unknown",
}

func parseRuleSegment(raw string) (CSTRule, error) {
	raw, comment := extractComment(raw)
	fields := strings.Fields(raw)

	var modifier string
	if n := len(fields); n > 0 {
		if m, ok := modifierTokens[strings.ToLower(fields[n-1])]; ok {
			modifier = m
			fields = fields[:n-1]
		}
	}

	if len(fields) == 0 {
		if modifier == "" {
			return CSTRule{}, newParseError(SyntaxError, 0, "a selector sequence or modifier", raw)
		}
		// A bare modifier ("closed", "open") with no selector at all is a
		// real-world shorthand for "always" (empty-date equivalence).
		return CSTRule{Modifier: modifier, Comment: comment}, nil
	}

	if strings.EqualFold(fields[0], "24/7") {
		return CSTRule{
			Selector: semantics.SelectorSequence{Always: true},
			Modifier: modifier,
			Comment:  comment,
		}, nil
	}

	sel, err := parseSelectorFields(fields)
	if err != nil {
		return CSTRule{}, err
	}

	return CSTRule{Selector: sel, Modifier: modifier, Comment: comment}, nil
}

func extractComment(raw string) (string, string) {
	first := strings.IndexByte(raw, '"')
	if first < 0 {
		return raw, ""
	}
	last := strings.LastIndexByte(raw, '"')
	if last <= first {
		return raw, ""
	}
	comment := raw[first+1 : last]
	without := raw[:first] + raw[last+1:]
	return without, comment
}

func parseSelectorFields(rawFields []string) (semantics.SelectorSequence, error) {
	fields := expandGluedYearTokens(rawFields)
	var sel semantics.SelectorSequence
	idx := 0
	anchorYear := 0

	if idx < len(fields) && isYearToken(fields[idx]) {
		if idx+1 < len(fields) {
			if _, ok := monthAbbrev(fields[idx+1]); ok {
				y, err := strconv.Atoi(strings.TrimSuffix(fields[idx], "+"))
				if err != nil {
					return sel, newParseError(YearOutOfRange, idx, "a 4-digit year", fields[idx])
				}
				anchorYear = y
				idx++
				goto monthday
			}
		}
		yr, err := parseYearField(fields[idx])
		if err != nil {
			return sel, err
		}
		sel.Year = append(sel.Year, yr)
		idx++
	}

monthday:
	if idx < len(fields) {
		if strings.EqualFold(fields[idx], "easter") {
			sel.Month = append(sel.Month, semantics.MonthDayRange{
				From: semantics.MonthDayPoint{Year: anchorYear, Easter: true},
			})
			idx++
		} else if month, rest, ok := parseMonthToken(fields[idx]); ok {
			mdr := semantics.MonthDayRange{From: semantics.MonthDayPoint{Year: anchorYear, Month: month}}
			if rest != 0 {
				mdr.To = semantics.MonthDayPoint{Year: anchorYear, Month: rest}
			}
			idx++
			if idx < len(fields) && looksLikeDaySpec(fields[idx]) {
				if err := applyDaySpec(&mdr, fields[idx]); err != nil {
					return sel, err
				}
				idx++
			}
			sel.Month = append(sel.Month, mdr)
		}
	}

	if idx < len(fields) && looksLikeWeekToken(fields[idx]) {
		wr, err := parseWeekToken(fields[idx])
		if err != nil {
			return sel, err
		}
		sel.Week = append(sel.Week, wr)
		idx++
	}

	if idx < len(fields) && !isTimeToken(fields[idx]) {
		if sel2, ok, err := parseWeekdayField(fields[idx]); err != nil {
			return sel, err
		} else if ok {
			sel.Weekday = sel2
			idx++
		}
	}

	if idx < len(fields) && isTimeToken(fields[idx]) {
		tr, err := parseTimeField(fields[idx])
		if err != nil {
			return sel, err
		}
		sel.Time = append(sel.Time, tr)
		idx++
	}

	if idx < len(fields) {
		return sel, newParseError(SyntaxError, idx, "end of selector sequence", fields[idx])
	}

	return sel, nil
}

// parseMonthToken recognizes a month name or a month span like "Jan-Mar".
func parseMonthToken(tok string) (from int, to int, ok bool) {
	if dash := strings.IndexByte(tok, '-'); dash > 0 {
		a, aok := monthAbbrev(tok[:dash])
		b, bok := monthAbbrev(tok[dash+1:])
		if aok && bok {
			return a, b, true
		}
		return 0, 0, false
	}
	m, mok := monthAbbrev(tok)
	return m, 0, mok
}

func looksLikeDaySpec(tok string) bool {
	if isTimeToken(tok) {
		return false
	}
	if _, ok := weekdayAbbrev(tok); ok {
		return false
	}
	core := strings.TrimSuffix(tok, "+")
	for _, part := range strings.Split(core, "-") {
		if !isAllDigits(part) {
			return false
		}
	}
	return true
}

func applyDaySpec(mdr *semantics.MonthDayRange, tok string) error {
	if strings.HasSuffix(tok, "+") {
		mdr.OpenEnded = true
		tok = strings.TrimSuffix(tok, "+")
	}
	parts := strings.SplitN(tok, "-", 2)
	from, err := strconv.Atoi(parts[0])
	if err != nil || from < 1 || from > 31 {
		return newParseError(MonthdayOutOfRange, 0, "a day 1-31", tok)
	}
	mdr.From.Day = from
	if len(parts) == 2 {
		to, err := strconv.Atoi(parts[1])
		if err != nil || to < 1 || to > 31 {
			return newParseError(MonthdayOutOfRange, 0, "a day 1-31", tok)
		}
		mdr.To.Month = mdr.From.Month
		mdr.To.Day = to
	}
	return nil
}

func parseYearField(tok string) (semantics.YearRange, error) {
	var yr semantics.YearRange
	if strings.HasSuffix(tok, "+") {
		yr.OpenEnded = true
		tok = strings.TrimSuffix(tok, "+")
	}
	step := 0
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		s, err := strconv.Atoi(tok[slash+1:])
		if err != nil || s < 1 {
			return yr, newParseError(YearOutOfRange, 0, "a positive step", tok)
		}
		step = s
		tok = tok[:slash]
	}
	parts := strings.SplitN(tok, "-", 2)
	from, err := strconv.Atoi(parts[0])
	if err != nil {
		return yr, newParseError(YearOutOfRange, 0, "a 4-digit year", tok)
	}
	yr.From = from
	if len(parts) == 2 {
		to, err := strconv.Atoi(parts[1])
		if err != nil {
			return yr, newParseError(YearOutOfRange, 0, "a 4-digit year", tok)
		}
		yr.To = to
	}
	yr.Step = step
	if yr.From < 1900 || yr.From > 9999 || (yr.To != 0 && (yr.To < yr.From || yr.To > 9999)) {
		return yr, newParseError(YearOutOfRange, 0, "a year in [1900, 9999]", tok)
	}
	return yr, nil
}

// looksLikeWeekToken reports whether tok has the shape "Wnn[-nn[/step]]":
// a leading W/w, then a 2-digit ISO week, an optional "-" and 2-digit
// end week, and an optional "/" step.
func looksLikeWeekToken(tok string) bool {
	if len(tok) < 3 || (tok[0] != 'W' && tok[0] != 'w') {
		return false
	}
	body := tok[1:]
	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		if !isAllDigits(body[slash+1:]) || body[slash+1:] == "" {
			return false
		}
		body = body[:slash]
	}
	parts := strings.SplitN(body, "-", 2)
	for _, p := range parts {
		if len(p) != 2 || !isAllDigits(p) {
			return false
		}
	}
	return true
}

// parseWeekToken parses a "Wnn[-nn[/step]]" token into a WeekRange.
func parseWeekToken(tok string) (semantics.WeekRange, error) {
	var wr semantics.WeekRange
	body := tok[1:]

	if slash := strings.IndexByte(body, '/'); slash >= 0 {
		step, err := strconv.Atoi(body[slash+1:])
		if err != nil || step < 1 {
			return wr, newParseError(SyntaxError, 0, "a positive week step", tok)
		}
		wr.Step = step
		body = body[:slash]
	}

	parts := strings.SplitN(body, "-", 2)
	from, err := strconv.Atoi(parts[0])
	if err != nil || from < 1 || from > 53 {
		return wr, newParseError(SyntaxError, 0, "an ISO week 01-53", tok)
	}
	wr.From = from
	if len(parts) == 2 {
		to, err := strconv.Atoi(parts[1])
		if err != nil || to < 1 || to > 53 {
			return wr, newParseError(SyntaxError, 0, "an ISO week 01-53", tok)
		}
		wr.To = to
	}
	return wr, nil
}

func parseWeekdayField(tok string) (*semantics.WeekdaySelector, bool, error) {
	var sel semantics.WeekdaySelector
	matchedAny := false

	for _, part := range strings.Split(tok, ",") {
		if part == "" {
			continue
		}
		switch strings.ToUpper(part) {
		case "PH":
			sel.Holidays = append(sel.Holidays, semantics.HolidayRef{Kind: semantics.PublicHoliday})
			matchedAny = true
			continue
		case "SH":
			sel.Holidays = append(sel.Holidays, semantics.HolidayRef{Kind: semantics.SchoolHoliday})
			matchedAny = true
			continue
		}

		rng, ok, err := parseWeekdayRangePart(part)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		sel.Ranges = append(sel.Ranges, rng)
		matchedAny = true
	}

	if !matchedAny {
		return nil, false, nil
	}
	return &sel, true, nil
}

func parseWeekdayRangePart(part string) (semantics.WeekdayRange, bool, error) {
	var rng semantics.WeekdayRange

	nth := ""
	if b := strings.IndexByte(part, '['); b >= 0 {
		e := strings.IndexByte(part, ']')
		if e <= b {
			return rng, false, newParseError(SyntaxError, 0, "a closing ]", part)
		}
		nth = part[b+1 : e]
		part = part[:b]
	}

	from, fok := weekdayAbbrev(part)
	if !fok {
		return rng, false, nil
	}
	to := from
	if dash := strings.IndexByte(part, '-'); dash > 0 {
		if wd, ok := weekdayAbbrev(part[dash+1:]); ok {
			to = wd
		}
	}
	rng.From, rng.To = from, to

	if nth != "" {
		for _, n := range strings.Split(nth, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(n))
			if err != nil {
				return rng, false, newParseError(SyntaxError, 0, "an integer nth-occurrence", n)
			}
			rng.Nth = append(rng.Nth, v)
		}
	}
	return rng, true, nil
}

func parseTimeField(tok string) (semantics.TimeRange, error) {
	var tr semantics.TimeRange

	step := time.Duration(0)
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		minutes, err := strconv.Atoi(tok[slash+1:])
		if err != nil || minutes < 1 {
			return tr, newParseError(InvalidTimespan, 0, "a positive minute step", tok)
		}
		step = time.Duration(minutes) * time.Minute
		tok = tok[:slash]
	}
	tr.Step = step

	if strings.HasSuffix(tok, "+") {
		tr.OpenEnded = true
		tok = strings.TrimSuffix(tok, "+")
		tp, err := parseTimePoint(tok)
		if err != nil {
			return tr, err
		}
		tr.From = tp
		return tr, nil
	}

	dash := strings.IndexByte(tok, '-')
	if dash < 0 {
		return tr, newParseError(InvalidTimespan, 0, "a '-'-separated time range", tok)
	}
	from, err := parseTimePoint(tok[:dash])
	if err != nil {
		return tr, err
	}
	to, err := parseTimePoint(tok[dash+1:])
	if err != nil {
		return tr, err
	}
	tr.From, tr.To = from, to
	return tr, nil
}

func parseTimePoint(tok string) (semantics.TimePoint, error) {
	if tok == "" {
		return semantics.TimePoint{}, newParseError(InvalidTimespan, 0, "a clock or sun-event time", tok)
	}

	lower := strings.ToLower(tok)
	for name, event := range sunEventNames {
		if strings.HasPrefix(lower, name) {
			offset := time.Duration(0)
			rest := tok[len(name):]
			if rest != "" {
				sign := time.Duration(1)
				if rest[0] == '-' {
					sign = -1
					rest = rest[1:]
				} else if rest[0] == '+' {
					rest = rest[1:]
				}
				mins, err := parseClockMinutes(rest)
				if err != nil {
					return semantics.TimePoint{}, err
				}
				offset = sign * time.Duration(mins) * time.Minute
			}
			return semantics.TimePoint{Variable: &semantics.VariableTime{Event: event, Offset: offset}}, nil
		}
	}

	minutes, err := parseClockMinutes(tok)
	if err != nil {
		return semantics.TimePoint{}, err
	}
	clock := semantics.ClockTime(minutes)
	return semantics.TimePoint{Clock: &clock}, nil
}

func parseClockMinutes(tok string) (int, error) {
	parts := strings.SplitN(tok, ":", 2)
	if len(parts) != 2 {
		return 0, newParseError(InvalidTimespan, 0, "HH:MM", tok)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, newParseError(InvalidTimespan, 0, "HH:MM", tok)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, newParseError(InvalidTimespan, 0, "HH:MM", tok)
	}
	if h < 0 || h > 48 || m < 0 || m > 59 {
		return 0, newParseError(InvalidTimespan, 0, "a valid clock time", tok)
	}
	return h*60 + m, nil
}
