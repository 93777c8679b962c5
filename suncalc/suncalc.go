package suncalc

import (
	"math"
	"time"

	"github.com/openhours/ohgo/calendar"
)

// Event identifies which sun event a variable time in the opening_hours
// grammar refers to ("variable time").
type Event int

const (
	Dawn Event = iota
	Sunrise
	Sunset
	Dusk
)

func (e Event) String() string {
	switch e {
	case Dawn:
		return "dawn"
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	case Dusk:
		return "dusk"
	default:
		return "unknown"
	}
}

// targetAltitude returns, in degrees, the sun's altitude that defines each
// event: 0° for sunrise/sunset, -6° (civil twilight) for dawn/dusk.
func (e Event) targetAltitude() float64 {
	switch e {
	case Dawn, Dusk:
		return -6.0
	default:
		return 0.0
	}
}

// Times holds the four sun-event offsets-from-midnight for one date and
// location. A missing event (polar day or polar night) is reported via
// NeverRises/NeverSets rather than a zero Duration, so callers can never
// mistake "undefined" for midnight.
type Times struct {
	Dawn, Sunrise, Sunset, Dusk time.Duration
	NeverRises                  bool // sun never reaches 0° altitude this day
	NeverSets                   bool // sun never drops to 0° altitude this day
}

// Offset returns the offset-from-midnight for e, and false if e is
// undefined for this Times value (polar day/night, per event).
func (t Times) Offset(e Event) (time.Duration, bool) {
	switch e {
	case Dawn:
		if t.NeverRises {
			return 0, false
		}
		return t.Dawn, true
	case Sunrise:
		if t.NeverRises {
			return 0, false
		}
		return t.Sunrise, true
	case Sunset:
		if t.NeverSets {
			return 0, false
		}
		return t.Sunset, true
	case Dusk:
		if t.NeverSets {
			return 0, false
		}
		return t.Dusk, true
	default:
		return 0, false
	}
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi

	// earthObliquity is Earth's axial tilt, used to derive solar
	// declination from ecliptic longitude.
	earthObliquity = 23.4397
)

// Compute returns the civil dawn, sunrise, sunset, and dusk offsets from
// UTC midnight on (year, month, day) at (lat, lon), using the NOAA-style
// closed-form solar position approximation: Julian date -> solar mean
// anomaly -> equation of center -> ecliptic longitude -> declination ->
// hour angle for the target altitude -> local mean time.
//
// lat and lon are in degrees; lon is positive east of Greenwich. The
// returned offsets are relative to UTC midnight of the given date; an
// embedder applying a local timezone is responsible for the corresponding
// shift, same as it is for clock-time selectors.
func Compute(year, month, day int, lat, lon float64) Times {
	jdn := calendar.GregorianToJDN(year, month, day)

	// Days since the J2000.0 epoch, adjusted to local solar noon.
	n := float64(jdn) - 2451545.0 - lon/360.0

	meanAnomaly := math.Mod(357.5291+0.98560028*n, 360)
	if meanAnomaly < 0 {
		meanAnomaly += 360
	}
	mRad := meanAnomaly * degToRad

	equationOfCenter := 1.9148*math.Sin(mRad) + 0.02*math.Sin(2*mRad) + 0.0003*math.Sin(3*mRad)

	eclipticLongitude := math.Mod(meanAnomaly+102.9372+equationOfCenter+180, 360)
	if eclipticLongitude < 0 {
		eclipticLongitude += 360
	}
	lambdaRad := eclipticLongitude * degToRad

	solarTransit := 2451545.0 + n + 0.0053*math.Sin(mRad) - 0.0069*math.Sin(2*lambdaRad)

	declinationRad := math.Asin(math.Sin(lambdaRad) * math.Sin(earthObliquity*degToRad))

	latRad := lat * degToRad

	twilightHourAngle, twilightUndefined := hourAngleOffset(Dawn.targetAltitude(), latRad, declinationRad)
	dayHourAngle, dayUndefined := hourAngleOffset(Sunrise.targetAltitude(), latRad, declinationRad)

	var times Times
	if twilightUndefined || dayUndefined {
		// The sun never crosses the target altitude this day: either
		// always above (midsummer) or always below (polar night)
		// horizon. Either way these offsets are undefined.
		times.NeverRises = true
		times.NeverSets = true
	}

	if !times.NeverRises {
		times.Dawn = jdFractionToDuration(solarTransit - twilightHourAngle)
		times.Sunrise = jdFractionToDuration(solarTransit - dayHourAngle)
	}
	if !times.NeverSets {
		times.Dusk = jdFractionToDuration(solarTransit + twilightHourAngle)
		times.Sunset = jdFractionToDuration(solarTransit + dayHourAngle)
	}

	return times
}

// hourAngleOffset returns the fractional-day hour angle (as a JD offset)
// at which the sun reaches altitude degrees above the horizon, given an
// observer latitude and the sun's current declination, both in radians.
// neverReached is true when the sun never reaches that altitude on this
// day (polar day or polar night).
func hourAngleOffset(altitudeDeg float64, latRad, declinationRad float64) (offset float64, neverReached bool) {
	altRad := altitudeDeg * degToRad

	cosHourAngle := (math.Sin(altRad) - math.Sin(latRad)*math.Sin(declinationRad)) /
		(math.Cos(latRad) * math.Cos(declinationRad))

	if cosHourAngle > 1 || cosHourAngle < -1 {
		return 0, true
	}

	hourAngleDeg := math.Acos(cosHourAngle) * radToDeg
	return hourAngleDeg / 360.0, false
}

// jdFractionToDuration converts a Julian date to a time.Duration offset
// from the midnight of its integer day, truncated to whole minutes per
// ("boundaries at the minute ... for sun events, truncated to the
// minute").
func jdFractionToDuration(jd float64) time.Duration {
	fractionalDay := jd - math.Floor(jd) + 0.5
	if fractionalDay >= 1 {
		fractionalDay -= 1
	}
	if fractionalDay < 0 {
		fractionalDay += 1
	}

	minutes := math.Floor(fractionalDay * 24 * 60)
	return time.Duration(minutes) * time.Minute
}
