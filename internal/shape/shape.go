// Package shape rasterizes arcs, shaded disks and filled sectors onto a
// canvas using fixed-point trig.
//
// Polyline arcs measure degrees clockwise from 12 o'clock. FillArc keeps
// its own convention (clockwise from 3 o'clock); FillSector adapts it.
package shape

import (
	"image"

	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/fixedtrig"
)

// ellipsePoint returns the point at deg on an ellipse with half axes w, h.
func ellipsePoint(center image.Point, w, h, deg int) image.Point {
	a := fixedtrig.FromDegrees(deg % 360)
	return image.Point{
		X: fixedtrig.Offset(fixedtrig.Sin(a), w) + center.X,
		Y: fixedtrig.Offset(-fixedtrig.Cos(a), h) + center.Y,
	}
}

// arcStep picks the degree step for a span: short arcs get coarse steps,
// long arcs finer ones.
func arcStep(span int) int {
	step := span / 18
	if span > 180 {
		step = span / 72
	} else if span > 90 {
		step = span / 36
	}
	if step < 1 {
		step = 1
	}
	return step
}

// EllipticalArc strokes a polyline approximation of the ellipse arc from
// start to end degrees. start is moved into the non-negative range and end
// is advanced by whole turns until it exceeds start. It returns the number
// of segments drawn.
func EllipticalArc(c canvas.Canvas, center image.Point, w, h, start, end int) int {
	for start < 0 {
		start += 360
	}
	for end <= start {
		end += 360
	}
	step := arcStep(end - start)

	segments := 0
	prev := ellipsePoint(center, w, h, start)
	for pos := start + step; pos <= end; pos += step {
		next := ellipsePoint(center, w, h, pos)
		c.DrawLine(prev, next)
		prev = next
		segments++
	}
	return segments
}

// ShadedDisk fills a disk wedge by stroking concentric circular arcs from
// radius-thickness+1 out to radius.
func ShadedDisk(c canvas.Canvas, center image.Point, radius, thickness, start, end int) {
	for r := radius - thickness + 1; r <= radius; r++ {
		EllipticalArc(c, center, r, r, start, end)
	}
}
