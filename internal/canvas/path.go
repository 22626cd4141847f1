package canvas

import (
	"image"

	"github.com/litescript/planetarium/internal/fixedtrig"
)

// Path is a closed polygon with a placement offset and rotation.
type Path struct {
	points   []image.Point
	offset   image.Point
	rotation int32
}

// NewPath returns a path over a copy of points.
func NewPath(points []image.Point) *Path {
	p := &Path{points: make([]image.Point, len(points))}
	copy(p.points, points)
	return p
}

// MoveTo sets the path's placement offset.
func (p *Path) MoveTo(offset image.Point) {
	p.offset = offset
}

// RotateTo sets the absolute rotation in fixedtrig units.
func (p *Path) RotateTo(angle int32) {
	p.rotation = angle
}

// Len returns the number of vertices.
func (p *Path) Len() int {
	return len(p.points)
}

// Transformed returns the vertices rotated about the local origin and then
// offset, in canvas coordinates.
func (p *Path) Transformed() []image.Point {
	sin := fixedtrig.Sin(p.rotation)
	cos := fixedtrig.Cos(p.rotation)
	out := make([]image.Point, len(p.points))
	for i, pt := range p.points {
		out[i] = image.Point{
			X: fixedtrig.Offset(cos, pt.X) - fixedtrig.Offset(sin, pt.Y) + p.offset.X,
			Y: fixedtrig.Offset(cos, pt.Y) + fixedtrig.Offset(sin, pt.X) + p.offset.Y,
		}
	}
	return out
}
