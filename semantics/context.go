package semantics

import (
	"fmt"
	"math"
	"time"

	"github.com/openhours/ohgo/holidays"
)

// EvaluationContext is the immutable bundle an evaluation call borrows
// ("Evaluation context"). It is built once by the embedder and
// reused across calls; no evaluator operation mutates it.
type EvaluationContext struct {
	// Location is the embedder's local timezone. DefaultEvaluationContext
	// sets it to time.Local. The evaluator does not read it: instants are
	// not converted, and each instant's date and clock time are taken in
	// the instant's own location.
	Location *time.Location

	// HasCoordinates reports whether Lat/Lon are meaningful. A context
	// without coordinates cannot resolve variable (sun-relative) times;
	// selectors referencing them degrade to "dimension does not match."
	HasCoordinates bool
	Lat, Lon       float64

	Holidays holidays.Set

	// ApproxBoundDays is a hint, in days, for coarsening the next-change
	// search for expressions with no sub-day selector. The evaluator does
	// not read it, so it has no effect on results or on search speed.
	ApproxBoundDays int
}

// DefaultEvaluationContext returns a context with no coordinates, no
// holiday data, and the local system timezone.
func DefaultEvaluationContext() EvaluationContext {
	return EvaluationContext{Location: time.Local}
}

// ErrInvalidCoordinates is returned by WithCoordinates when lat or lon is
// out of range ("Context" error class). NaN coordinates are
// silently ignored rather than rejected, per the same section.
type ErrInvalidCoordinates struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinates) Error() string {
	return fmt.Sprintf("semantics: invalid coordinates (%g, %g)", e.Lat, e.Lon)
}

// WithCoordinates returns a copy of ctx with Lat/Lon set, validating their
// range. A NaN component is ignored (coordinates left unset) rather than
// treated as an error.
func (ctx EvaluationContext) WithCoordinates(lat, lon float64) (EvaluationContext, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return ctx, nil
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ctx, &ErrInvalidCoordinates{Lat: lat, Lon: lon}
	}
	ctx.Lat, ctx.Lon = lat, lon
	ctx.HasCoordinates = true
	return ctx, nil
}

func (ctx EvaluationContext) location() *time.Location {
	if ctx.Location != nil {
		return ctx.Location
	}
	return time.Local
}
