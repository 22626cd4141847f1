// Package canvas defines the drawing surface the scene renders into and
// provides a raster implementation and a recording implementation.
package canvas

import (
	"image"
	"image/color"
)

// Canvas is a stateful drawing context: stroke, fill and text colours are
// set first and used by the following primitives. Coordinates outside the
// bounds are clipped silently.
type Canvas interface {
	// Bounds returns the drawable area; Min is always the origin.
	Bounds() image.Rectangle
	// SupportsColor reports whether the surface renders the colour palette.
	SupportsColor() bool

	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetTextColor(c color.RGBA)

	// Fill paints the whole surface.
	Fill(c color.RGBA)
	FillCircle(center image.Point, radius int)
	DrawCircle(center image.Point, radius int)
	DrawLine(a, b image.Point)
	DrawPixel(p image.Point)
	FillPath(p *Path)
	DrawPath(p *Path)

	// TextSize returns the laid out size of text.
	TextSize(text string) image.Point
	// DrawText draws text horizontally centred in box.
	DrawText(text string, box image.Rectangle)
}

// Contains reports whether p lies inside r using half-open bounds.
func Contains(r image.Rectangle, p image.Point) bool {
	return p.In(r)
}
