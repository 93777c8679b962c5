package calendar

import "time"

// GregorianToJDN converts a Gregorian calendar date to a Julian Day Number.
//
// Reference: Dershowitz & Reingold, "Calendrical Calculations".
//
// Example:
//
//	GregorianToJDN(2000, 1, 1) = 2451545
func GregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian converts a Julian Day Number back to a Gregorian date.
func JDNToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10

	return year, month, day
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

// DaysInMonth returns the number of days in the given Gregorian month
// (1-12) for year.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// AddDays returns the JDN-equivalent Gregorian date that is n days (may be
// negative) after (year, month, day). Used to apply a MonthDay selector's
// signed day-offset.
func AddDays(year, month, day, n int) (int, int, int) {
	return JDNToGregorian(GregorianToJDN(year, month, day) + n)
}

// Weekday returns the time.Weekday of (year, month, day) under the proleptic
// Gregorian calendar, valid for any year in [1900, 9999].
func Weekday(year, month, day int) time.Weekday {
	// JDN 0 falls on a Monday; time.Weekday numbers Sunday=0.
	return time.Weekday((GregorianToJDN(year, month, day) + 1) % 7)
}

// Easter returns the (month, day) of Gregorian Easter Sunday for year,
// using the Anonymous Gregorian algorithm (a.k.a. Meeus/Jones/Butcher).
func Easter(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = (h+l-7*m+114)%31 + 1
	return month, day
}

// ISOWeek returns the ISO-8601 week number (1-53) and week-numbering year
// for (year, month, day). It is a thin, explicit wrapper around time.Time's
// ISOWeek so callers working purely in (y, m, d) triples — as the selector
// matchers do — never need to construct a time.Time with a timezone.
func ISOWeek(year, month, day int) (weekYear, week int) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.ISOWeek()
}
