package astro

import (
	"time"

	"github.com/litescript/planetarium/internal/fixedtrig"
)

// LuckyStarHour is the hour used for the lucky star's epoch day.
const LuckyStarHour = 12

// UnsetDate is the lucky star date sentinel meaning "not configured".
const UnsetDate = "00000000"

// MeanAngle returns the face angle in degrees for b at epochDay: the mean
// anomaly is mirrored (360 - M) so bodies advance clockwise on screen.
func MeanAngle(b Body, epochDay float64) float64 {
	return 360 - NormalizeDegrees(b.M+b.Md*epochDay)
}

// Recompute stores the angle and its fixed-point sine/cosine for epochDay.
// Calling it twice with the same inputs yields the same state.
func Recompute(b *Body, epochDay int) {
	angle := int(MeanAngle(*b, float64(epochDay))) % 360
	b.Angle = angle
	trig := fixedtrig.FromDegrees(angle)
	b.Sin = fixedtrig.Sin(trig)
	b.Cos = fixedtrig.Cos(trig)
}

// ShouldRecompute reports whether a tick triggers the hourly angle update.
func ShouldRecompute(yearChanged bool, minute int) bool {
	return yearChanged || minute == 0
}

// ParseLuckyDate splits a YYYYMMDD string into its numeric groups. A group
// that is zero falls back to the matching component of now. Characters are
// read as digit offsets without validation; callers validate at the
// configuration boundary. Strings shorter than 8 bytes read missing digits
// as zero.
func ParseLuckyDate(s string, now time.Time) (year, month, day int) {
	digit := func(i int) int {
		if i >= len(s) {
			return 0
		}
		return int(s[i]) - '0'
	}
	year = digit(0)*1000 + digit(1)*100 + digit(2)*10 + digit(3)
	month = digit(4)*10 + digit(5)
	day = digit(6)*10 + digit(7)

	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if day == 0 {
		day = now.Day()
	}
	return year, month, day
}

// LuckyDateSet reports whether s configures a lucky star, i.e. its leading
// digits parse to a nonzero number.
func LuckyDateSet(s string) bool {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		if n != 0 {
			return true
		}
	}
	return false
}

// LuckyEpochDay returns the epoch day for the lucky star date at noon.
func LuckyEpochDay(date string, now time.Time) int {
	y, m, d := ParseLuckyDate(date, now)
	return EpochDay(y, m, d, LuckyStarHour)
}
