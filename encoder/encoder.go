package encoder

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/openhours/ohgo/semantics"
	"github.com/openhours/ohgo/suncalc"
)

var monthAbbrev = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var weekdayAbbrev = map[time.Weekday]string{
	time.Monday: "Mo", time.Tuesday: "Tu", time.Wednesday: "We", time.Thursday: "Th",
	time.Friday: "Fr", time.Saturday: "Sa", time.Sunday: "Su",
}

var sunEventName = map[suncalc.Event]string{
	suncalc.Dawn: "dawn", suncalc.Sunrise: "sunrise", suncalc.Sunset: "sunset", suncalc.Dusk: "dusk",
}

var stateModifier = map[semantics.State]string{
	semantics.Closed:  "off",
	semantics.Unknown: "unknown",
}

// ToString renders expr to its canonical opening_hours text.
func ToString(expr *semantics.Expression) string {
	var b strings.Builder
	for i, rule := range expr.Rules {
		if i > 0 {
			b.WriteString(separatorFor(rule.Combinator))
		}
		b.WriteString(encodeRule(rule))
	}
	return b.String()
}

// Encode writes ToString(expr) to w.
func Encode(w io.Writer, expr *semantics.Expression) error {
	_, err := io.WriteString(w, ToString(expr))
	return err
}

func separatorFor(c semantics.Combinator) string {
	switch c {
	case semantics.Additional:
		return ", "
	case semantics.Fallback:
		return " || "
	default:
		return "; "
	}
}

func encodeRule(rule semantics.Rule) string {
	var fields []string
	sel := rule.Selector

	if sel.Always {
		fields = append(fields, "24/7")
	} else {
		for _, yr := range sel.Year {
			fields = append(fields, encodeYear(yr))
		}
		for _, mdr := range sel.Month {
			fields = append(fields, encodeMonthDay(mdr))
		}
		for _, wr := range sel.Week {
			fields = append(fields, encodeWeek(wr))
		}
		if sel.Weekday != nil {
			if wd := encodeWeekday(*sel.Weekday); wd != "" {
				fields = append(fields, wd)
			}
		}
		for _, tr := range sel.Time {
			fields = append(fields, encodeTime(tr))
		}
	}

	if m, ok := stateModifier[rule.State]; ok {
		fields = append(fields, m)
	}

	text := strings.Join(fields, " ")
	if rule.Comment != "" {
		if text != "" {
			text += " "
		}
		text += fmt.Sprintf("%q", rule.Comment)
	}
	return text
}

func encodeYear(yr semantics.YearRange) string {
	s := strconv.Itoa(yr.From)
	if yr.OpenEnded {
		return s + "+"
	}
	if yr.To != 0 && yr.To != yr.From {
		s += "-" + strconv.Itoa(yr.To)
	}
	if yr.Step > 0 {
		s += "/" + strconv.Itoa(yr.Step)
	}
	return s
}

func encodeMonthDay(mdr semantics.MonthDayRange) string {
	prefix := ""
	if mdr.From.Year != 0 {
		prefix = strconv.Itoa(mdr.From.Year) + " "
	}
	if mdr.From.Easter {
		return prefix + "easter"
	}
	s := prefix + monthAbbrev[mdr.From.Month]
	if mdr.From.Day == 0 {
		if mdr.To.Month != 0 && mdr.To.Month != mdr.From.Month {
			s += "-" + monthAbbrev[mdr.To.Month]
		}
		return s
	}
	if mdr.OpenEnded {
		return fmt.Sprintf("%s %d+", s, mdr.From.Day)
	}
	if mdr.To.Day != 0 && (mdr.To.Day != mdr.From.Day || mdr.To.Month != mdr.From.Month) {
		return fmt.Sprintf("%s %d-%d", s, mdr.From.Day, mdr.To.Day)
	}
	return fmt.Sprintf("%s %d", s, mdr.From.Day)
}

func encodeWeek(wr semantics.WeekRange) string {
	s := fmt.Sprintf("W%02d", wr.From)
	if wr.To != 0 && wr.To != wr.From {
		s += fmt.Sprintf("-%02d", wr.To)
	}
	if wr.Step > 0 {
		s += "/" + strconv.Itoa(wr.Step)
	}
	return s
}

func encodeWeekday(wd semantics.WeekdaySelector) string {
	var parts []string
	for _, r := range wd.Ranges {
		parts = append(parts, encodeWeekdayRange(r))
	}
	for _, h := range wd.Holidays {
		if h.Kind == semantics.SchoolHoliday {
			parts = append(parts, "SH")
		} else {
			parts = append(parts, "PH")
		}
	}
	return strings.Join(parts, ",")
}

func encodeWeekdayRange(r semantics.WeekdayRange) string {
	s := weekdayAbbrev[r.From]
	if r.To != r.From {
		s += "-" + weekdayAbbrev[r.To]
	}
	if len(r.Nth) > 0 {
		nths := make([]string, len(r.Nth))
		for i, n := range r.Nth {
			nths[i] = strconv.Itoa(n)
		}
		s += "[" + strings.Join(nths, ",") + "]"
	}
	return s
}

func encodeTime(tr semantics.TimeRange) string {
	from := encodeTimePoint(tr.From)
	if tr.OpenEnded {
		return from + "+"
	}
	s := from + "-" + encodeTimePoint(tr.To)
	if tr.Step > 0 {
		s += "/" + strconv.Itoa(int(tr.Step.Minutes()))
	}
	return s
}

func encodeTimePoint(p semantics.TimePoint) string {
	if p.Variable != nil {
		name := sunEventName[p.Variable.Event]
		offset := p.Variable.Offset
		if offset == 0 {
			return name
		}
		sign := "+"
		if offset < 0 {
			sign = "-"
			offset = -offset
		}
		return fmt.Sprintf("%s%s%02d:%02d", name, sign, int(offset.Minutes())/60, int(offset.Minutes())%60)
	}
	clock := int(*p.Clock)
	return fmt.Sprintf("%02d:%02d", clock/60, clock%60)
}
