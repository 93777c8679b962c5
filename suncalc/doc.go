// Package suncalc computes civil dawn, sunrise, sunset, and dusk times for
// a given date and (latitude, longitude).
//
// It uses a closed-form NOAA-style solar-position approximation: Julian
// date to solar mean anomaly, equation of center, ecliptic longitude,
// declination, then the hour angle at which the sun reaches the target
// altitude for each event. It follows the same plain closed-form
// calendrical-calculation style as package calendar, whose JDN routines it
// builds on, rather than pulling in an ephemeris dependency.
package suncalc
