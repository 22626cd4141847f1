// Package scene composes one frame of the face from the world state, the
// settings and the displayed time.
package scene

import (
	"image"
	"image/color"
	"math/rand/v2"
	"strconv"

	"github.com/litescript/planetarium/internal/anim"
	"github.com/litescript/planetarium/internal/astro"
	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/fixedtrig"
	"github.com/litescript/planetarium/internal/shape"
	"github.com/litescript/planetarium/internal/state"
)

// Shading selects how planet disks are lit in colour.
type Shading int

const (
	// ShadingArcs strokes concentric arc polylines.
	ShadingArcs Shading = iota
	// ShadingSolid fills each half with a pixel-exact sector.
	ShadingSolid
)

// ParseShading accepts "arcs" or "solid".
func ParseShading(s string) (Shading, bool) {
	switch s {
	case "arcs", "":
		return ShadingArcs, true
	case "solid":
		return ShadingSolid, true
	}
	return ShadingArcs, false
}

func (s Shading) String() string {
	if s == ShadingSolid {
		return "solid"
	}
	return "arcs"
}

// Terminator half-width: the shadow side spans 170 degrees around the
// direction facing away from the sun.
const terminator = 85

var saturnRings = [3]struct{ w, h int }{{10, 3}, {11, 4}, {12, 5}}

// Compositor draws frames. It is not safe for concurrent use.
type Compositor struct {
	Shading Shading

	rng  *rand.Rand
	hand *canvas.Path
	star *canvas.Path
}

// NewCompositor returns a compositor drawing star colours from rng.
func NewCompositor(rng *rand.Rand) *Compositor {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Compositor{
		rng:  rng,
		hand: canvas.NewPath(handPoints),
		star: canvas.NewPath(starPoints),
	}
}

// Render draws a full frame back to front.
func (r *Compositor) Render(c canvas.Canvas, w *state.World, cfg config.Configuration, t anim.DisplayedTime) {
	pal := PaletteFor(c.SupportsColor(), cfg.Inverted)
	angle := HandAngle(t.Hour, t.Minute)
	vp := NewViewport(c.Bounds().Size(), angle)

	c.Fill(pal.Background)
	r.drawHourRing(c, vp, pal)
	if cfg.Stars {
		r.drawStars(c, vp, pal, w.Stars[:])
	}
	if cfg.Asteroids {
		drawField(c, vp, pal.Field, w.Asteroids[:])
	}
	sun := vp.Sun()
	drawSun(c, sun, pal)
	c.SetStrokeColor(pal.Orbit)
	for _, p := range w.Planets {
		c.DrawCircle(sun, p.Radius)
	}
	for i := range w.Planets {
		r.drawPlanet(c, vp, pal, w, i)
	}
	if w.LuckyStar.Visible() {
		r.drawLuckyStar(c, vp, pal, w.LuckyStar)
	}
	if !cfg.InfiniteRotation {
		r.drawHand(c, vp, pal, angle)
	}
}

func (r *Compositor) drawHourRing(c canvas.Canvas, vp Viewport, pal Palette) {
	c.SetStrokeColor(pal.Ring)
	c.SetFillColor(pal.Ring)
	c.SetTextColor(pal.Ring)
	for i := 1; i <= markCount; i++ {
		a := int32(fixedtrig.FullTurn * i / markCount)
		p := vp.Project(polar(ClockCenter, fixedtrig.Sin(a), fixedtrig.Cos(a), ringRadius))
		if !vp.Visible(p, edgeMargin) {
			continue
		}
		if i%4 != 0 {
			c.FillCircle(p, 2)
			continue
		}
		label := strconv.Itoa(i / 4)
		size := c.TextSize(label)
		corner := image.Pt(p.X-size.X/2, p.Y-size.Y/2-3)
		box := image.Rectangle{Min: corner, Max: corner.Add(size)}
		c.DrawText(label, box)
	}
}

func (r *Compositor) drawStars(c canvas.Canvas, vp Viewport, pal Palette, stars []image.Point) {
	c.SetStrokeColor(pal.Ring)
	bounds := c.Bounds()
	for _, s := range stars {
		p := vp.Project(ClockCenter.Add(s))
		if !canvas.Contains(bounds, p) {
			continue
		}
		if len(pal.Stars) > 1 {
			c.SetStrokeColor(pal.Stars[r.rng.IntN(len(pal.Stars))])
		} else {
			c.SetStrokeColor(pal.Stars[0])
		}
		c.DrawPixel(p)
	}
}

func drawField(c canvas.Canvas, vp Viewport, col color.RGBA, points []image.Point) {
	c.SetStrokeColor(col)
	bounds := c.Bounds()
	for _, s := range points {
		p := vp.Project(ClockCenter.Add(s))
		if canvas.Contains(bounds, p) {
			c.DrawPixel(p)
		}
	}
}

var sunRadii = []int{15, 10, 5}

func drawSun(c canvas.Canvas, at image.Point, pal Palette) {
	for i, col := range pal.Sun {
		c.SetFillColor(col)
		c.FillCircle(at, sunRadii[i])
	}
}

// extent returns how far the drawing of planet i reaches beyond its centre.
// Earth and Saturn cull on their moon orbit and outer ring rather than the
// disk; see the culling decision in DESIGN.md.
func extent(w *state.World, i int) int {
	switch i {
	case astro.Earth:
		return w.Moon.Radius + w.Moon.Size
	case astro.Saturn:
		return saturnRings[len(saturnRings)-1].w
	}
	return w.Planets[i].Size
}

func (r *Compositor) drawPlanet(c canvas.Canvas, vp Viewport, pal Palette, w *state.World, i int) {
	p := w.Planets[i]
	at := vp.Project(polar(ClockCenter, p.Sin, p.Cos, p.Radius))
	if !vp.Visible(at, extent(w, i)) {
		return
	}
	r.drawDisk(c, pal, pal.Planets[i], at, p.Size, p.Angle)

	switch i {
	case astro.Earth:
		c.SetStrokeColor(pal.Orbit)
		c.DrawCircle(at, w.Moon.Radius)
		moon := polar(at, w.Moon.Sin, w.Moon.Cos, w.Moon.Radius)
		// The moon is lit from the same side as its planet.
		r.drawDisk(c, pal, pal.Moon, moon, w.Moon.Size, p.Angle)
	case astro.Saturn:
		for k, ring := range saturnRings {
			c.SetStrokeColor(pal.SaturnRings[k%2])
			shape.EllipticalArc(c, at, ring.w, ring.h, 60, 300)
		}
	}
}

// drawDisk draws a body disk. In colour the half facing the sun is lit;
// angle is the body's orbital angle in degrees.
func (r *Compositor) drawDisk(c canvas.Canvas, pal Palette, bc BodyColors, at image.Point, size, angle int) {
	if !pal.Color {
		c.SetFillColor(bc.Lit)
		c.FillCircle(at, size)
		return
	}
	halves := [2]struct {
		col        color.RGBA
		start, end int
	}{
		{bc.Shadow, angle - terminator, angle + terminator},
		{bc.Lit, angle + terminator, angle + 360 - terminator},
	}
	for _, h := range halves {
		c.SetStrokeColor(h.col)
		if r.Shading == ShadingSolid {
			shape.FillSector(c, at, size, size, h.start, h.end)
		} else {
			shape.ShadedDisk(c, at, size, size, h.start, h.end)
		}
	}
}

func (r *Compositor) drawLuckyStar(c canvas.Canvas, vp Viewport, pal Palette, s astro.Body) {
	at := vp.Project(polar(ClockCenter, s.Sin, s.Cos, s.Radius))
	if !vp.Visible(at, edgeMargin) {
		return
	}
	r.star.MoveTo(at)
	r.star.RotateTo(s.TrigAngle())
	c.SetStrokeColor(pal.Field)
	c.DrawPath(r.star)
}

func (r *Compositor) drawHand(c canvas.Canvas, vp Viewport, pal Palette, angle int32) {
	tip := vp.Project(polar(ClockCenter, fixedtrig.Sin(angle), fixedtrig.Cos(angle), handRadius))
	r.hand.MoveTo(tip)
	r.hand.RotateTo(angle)
	c.SetFillColor(pal.HandFill)
	c.FillPath(r.hand)
	c.SetStrokeColor(pal.HandOutline)
	c.DrawPath(r.hand)
}
