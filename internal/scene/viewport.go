package scene

import (
	"image"

	"github.com/litescript/planetarium/internal/fixedtrig"
)

// Face geometry in world coordinates.
const (
	ringRadius  = 145 // hour marks and labels
	driftRadius = 85  // how far the view follows the hand
	handRadius  = ringRadius + 26
	markCount   = 48
	edgeMargin  = 10
)

// ClockCenter is the sun's position in world coordinates.
var ClockCenter = image.Pt(200, 200)

// HandAngle returns the hand angle in fixedtrig units for a 12-hour dial.
func HandAngle(hour, minute int) int32 {
	return int32(fixedtrig.FullTurn * ((hour%12)*60 + minute) / (12 * 60))
}

// polar returns center plus the point at radius along angle, with 0 at
// 12 o'clock and angles growing clockwise.
func polar(center image.Point, sin, cos int32, radius int) image.Point {
	return image.Point{
		X: fixedtrig.Offset(sin, radius) + center.X,
		Y: fixedtrig.Offset(-cos, radius) + center.Y,
	}
}

// Viewport maps world coordinates onto the canvas. The view is centred on
// a point that drifts around the sun with the hand.
type Viewport struct {
	Origin image.Point
	Size   image.Point
}

// NewViewport returns the viewport for a canvas of size with the hand at
// handAngle.
func NewViewport(size image.Point, handAngle int32) Viewport {
	sub := polar(ClockCenter, fixedtrig.Sin(handAngle), fixedtrig.Cos(handAngle), driftRadius)
	return Viewport{
		Origin: image.Pt(sub.X-size.X/2, sub.Y-size.Y/2),
		Size:   size,
	}
}

// Project converts a world point to canvas coordinates.
func (v Viewport) Project(p image.Point) image.Point {
	return p.Sub(v.Origin)
}

// Sun returns the sun's canvas position.
func (v Viewport) Sun() image.Point {
	return v.Project(ClockCenter)
}

// Visible reports whether canvas point p lies strictly inside the canvas
// grown by margin on every side.
func (v Viewport) Visible(p image.Point, margin int) bool {
	return p.X > -margin && p.X < v.Size.X+margin &&
		p.Y > -margin && p.Y < v.Size.Y+margin
}
