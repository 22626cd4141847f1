package shape

import (
	"image"

	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/fixedtrig"
)

// openEndSlope stands in for the end slope of a sector closing at 360°.
const openEndSlope float32 = -1000000

func slope(deg int) float32 {
	a := fixedtrig.FromDegrees(deg)
	return float32(fixedtrig.Cos(a)) / float32(fixedtrig.Sin(a))
}

// FillArc sets every pixel of the annulus [radius-thickness, radius) whose
// direction lies between start and end, measured clockwise from 3 o'clock.
// Sectors must satisfy 0 <= start < end <= 360 after reduction; an end of
// 0 means 360. The half-plane tests keep their boundary cases as-is: rays
// at exactly 0° and 180° are decided by the y == 0 branches, and the
// centre pixel is never set.
func FillArc(c canvas.Canvas, center image.Point, radius, thickness, start, end int) {
	start %= 360
	end %= 360
	for start < 0 {
		start += 360
	}
	for end < 0 {
		end += 360
	}
	if end == 0 {
		end = 360
	}

	sslope := slope(start)
	eslope := slope(end)
	if end == 360 {
		eslope = openEndSlope
	}

	ir2 := (radius - thickness) * (radius - thickness)
	or2 := radius * radius

	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			d2 := x*x + y*y
			if d2 >= or2 || d2 < ir2 {
				continue
			}
			fx, fy := float32(x), float32(y)

			startOK := (y > 0 && start < 180 && fx <= fy*sslope) ||
				(y < 0 && start > 180 && fx >= fy*sslope) ||
				(y < 0 && start <= 180) ||
				(y == 0 && start <= 180 && x < 0) ||
				(y == 0 && start == 0 && x > 0)

			endOK := (y > 0 && end < 180 && fx >= fy*eslope) ||
				(y < 0 && end > 180 && fx <= fy*eslope) ||
				(y > 0 && end >= 180) ||
				(y == 0 && end >= 180 && x < 0) ||
				(y == 0 && start == 0 && x > 0)

			if startOK && endOK {
				c.DrawPixel(image.Point{X: center.X + x, Y: center.Y + y})
			}
		}
	}
}

// FillSector fills a sector given in the polyline convention (clockwise
// from 12 o'clock), splitting it where it crosses 3 o'clock so every
// FillArc call stays within one turn.
func FillSector(c canvas.Canvas, center image.Point, radius, thickness, start, end int) {
	for end <= start {
		end += 360
	}
	span := end - start
	if span >= 360 {
		FillArc(c, center, radius, thickness, 0, 360)
		return
	}

	from := (start - 90) % 360
	if from < 0 {
		from += 360
	}
	to := from + span
	if to <= 360 {
		FillArc(c, center, radius, thickness, from, to)
		return
	}
	FillArc(c, center, radius, thickness, from, 360)
	FillArc(c, center, radius, thickness, 0, to-360)
}
