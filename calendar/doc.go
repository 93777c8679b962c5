// Package calendar provides calendar-arithmetic primitives and the compact,
// bit-packed day-set ("Compact Calendar") used to represent public and
// school holiday membership.
//
// Julian Day Number (JDN) conversions and the Anonymous Gregorian algorithm
// for Easter (Dershowitz & Reingold, "Calendrical Calculations") are the
// numeric foundation the selector package builds its MonthDay and Holiday
// matchers on.
package calendar
