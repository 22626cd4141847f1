package canvas

import (
	"image"
	"image/color"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpFill OpKind = iota
	OpFillCircle
	OpDrawCircle
	OpLine
	OpPixel
	OpFillPath
	OpDrawPath
	OpText
)

// String returns the op kind name.
func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpFillCircle:
		return "fill_circle"
	case OpDrawCircle:
		return "draw_circle"
	case OpLine:
		return "line"
	case OpPixel:
		return "pixel"
	case OpFillPath:
		return "fill_path"
	case OpDrawPath:
		return "draw_path"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call with the colour that was active for it.
type Op struct {
	Kind   OpKind
	Points []image.Point
	Radius int
	Text   string
	Box    image.Rectangle
	Color  color.RGBA
}

// Recorder is a Canvas that records draw calls instead of rasterizing.
// Text is measured as a fixed 7×13 cell per byte.
type Recorder struct {
	Ops []Op

	size   image.Point
	color  bool
	stroke color.RGBA
	fill   color.RGBA
	text   color.RGBA
}

// NewRecorder returns a recorder for a w×h surface.
func NewRecorder(w, h int, colour bool) *Recorder {
	return &Recorder{size: image.Point{X: w, Y: h}, color: colour}
}

func (r *Recorder) Bounds() image.Rectangle { return image.Rectangle{Max: r.size} }
func (r *Recorder) SupportsColor() bool     { return r.color }

func (r *Recorder) SetStrokeColor(c color.RGBA) { r.stroke = c }
func (r *Recorder) SetFillColor(c color.RGBA)   { r.fill = c }
func (r *Recorder) SetTextColor(c color.RGBA)   { r.text = c }

func (r *Recorder) Fill(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Color: c})
}

func (r *Recorder) FillCircle(center image.Point, radius int) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []image.Point{center}, Radius: radius, Color: r.fill})
}

func (r *Recorder) DrawCircle(center image.Point, radius int) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawCircle, Points: []image.Point{center}, Radius: radius, Color: r.stroke})
}

func (r *Recorder) DrawLine(a, b image.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []image.Point{a, b}, Color: r.stroke})
}

func (r *Recorder) DrawPixel(p image.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpPixel, Points: []image.Point{p}, Color: r.stroke})
}

func (r *Recorder) FillPath(p *Path) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPath, Points: p.Transformed(), Color: r.fill})
}

func (r *Recorder) DrawPath(p *Path) {
	r.Ops = append(r.Ops, Op{Kind: OpDrawPath, Points: p.Transformed(), Color: r.stroke})
}

func (r *Recorder) TextSize(text string) image.Point {
	return image.Point{X: 7 * len(text), Y: 13}
}

func (r *Recorder) DrawText(text string, box image.Rectangle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, Box: box, Color: r.text})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
