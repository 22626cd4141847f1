package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster draws into an in-memory RGBA image.
type Raster struct {
	img    *image.RGBA
	color  bool
	stroke color.RGBA
	fill   color.RGBA
	text   color.RGBA
	face   font.Face
}

// NewRaster allocates a w×h raster. When colour is false the scene picks
// its monochrome palette.
func NewRaster(w, h int, colour bool) *Raster {
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		color:  colour,
		stroke: color.RGBA{A: 0xff},
		fill:   color.RGBA{A: 0xff},
		text:   color.RGBA{A: 0xff},
		face:   basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }
func (r *Raster) SupportsColor() bool     { return r.color }

func (r *Raster) SetStrokeColor(c color.RGBA) { r.stroke = c }
func (r *Raster) SetFillColor(c color.RGBA)   { r.fill = c }
func (r *Raster) SetTextColor(c color.RGBA)   { r.text = c }

func (r *Raster) set(x, y int, c color.RGBA) {
	if !(image.Point{x, y}).In(r.img.Rect) {
		return
	}
	r.img.SetRGBA(x, y, c)
}

// Fill paints the whole raster.
func (r *Raster) Fill(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillCircle fills every pixel within radius of center.
func (r *Raster) FillCircle(center image.Point, radius int) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				r.set(center.X+dx, center.Y+dy, r.fill)
			}
		}
	}
}

// DrawCircle strokes a one pixel circle using the midpoint algorithm.
func (r *Raster) DrawCircle(center image.Point, radius int) {
	if radius <= 0 {
		r.set(center.X, center.Y, r.stroke)
		return
	}
	x, y := radius, 0
	err := 1 - radius
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			r.set(center.X+p[0], center.Y+p[1], r.stroke)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawLine strokes a one pixel Bresenham line including both end points.
func (r *Raster) DrawLine(a, b image.Point) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx + dy
	x, y := a.X, a.Y
	for {
		r.set(x, y, r.stroke)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawPixel sets a single pixel in the stroke colour.
func (r *Raster) DrawPixel(p image.Point) {
	r.set(p.X, p.Y, r.stroke)
}

// FillPath fills the transformed polygon with the fill colour.
func (r *Raster) FillPath(p *Path) {
	pts := p.Transformed()
	if len(pts) < 3 {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X)+0.5, float32(pts[0].Y)+0.5)
	for _, pt := range pts[1:] {
		z.LineTo(float32(pt.X)+0.5, float32(pt.Y)+0.5)
	}
	z.ClosePath()
	z.Draw(r.img, b, image.NewUniform(r.fill), image.Point{})
}

// DrawPath strokes the closed outline of the transformed polygon.
func (r *Raster) DrawPath(p *Path) {
	pts := p.Transformed()
	for i := range pts {
		r.DrawLine(pts[i], pts[(i+1)%len(pts)])
	}
}

// TextSize measures text in the built-in bitmap face.
func (r *Raster) TextSize(text string) image.Point {
	return image.Point{
		X: font.MeasureString(r.face, text).Ceil(),
		Y: r.face.Metrics().Height.Ceil(),
	}
}

// DrawText draws text centred horizontally in box, top aligned.
func (r *Raster) DrawText(text string, box image.Rectangle) {
	size := r.TextSize(text)
	x := box.Min.X + (box.Dx()-size.X)/2
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.text),
		Face: r.face,
		Dot:  fixed.P(x, box.Min.Y+r.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
