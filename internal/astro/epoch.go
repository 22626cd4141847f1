package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// epochJD is the Julian Date of epoch day 0 (1999-12-31 00:00 UT).
const epochJD = 2451543.5

// EpochDay returns the day number relative to J2000 using integer
// (truncating) division throughout. hour/24 is always 0 for valid hours,
// so the result has day granularity.
func EpochDay(year, month, day, hour int) int {
	return 367*year - 7*(year+(month+9)/12)/4 + 275*month/9 + day - 730530 + hour/24
}

// EpochDayFloat is the floating point form of EpochDay.
func EpochDayFloat(year, month, day, hour float64) float64 {
	return 367.0*year - 7.0*(year+(month+9.0)/12.0)/4.0 + 275.0*month/9.0 + day - 730530.0 + hour/24.0
}

// EpochDayOf returns the fractional epoch day of t via its Julian Date.
func EpochDayOf(t time.Time) float64 {
	return julian.TimeToJD(t.UTC()) - epochJD
}

// NormalizeDegrees reduces x into [0, 360) using floor division so that
// negative inputs wrap upward.
func NormalizeDegrees(x float64) float64 {
	r := x - math.Floor(x/360.0)*360.0
	if r >= 360 {
		// rounding lands exactly on 360 for tiny negative x
		r -= 360
	}
	return r
}
