package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// fitCells returns the largest cell grid that shows an image of size px
// inside cols×rows terminal cells without upscaling. Every cell carries
// two vertical pixels.
func fitCells(px image.Point, cols, rows int) (int, int) {
	if px.X <= 0 || px.Y <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w, h := px.X, (px.Y+1)/2
	if w > cols {
		h = h * cols / w
		w = cols
	}
	if h > rows {
		w = w * rows / h
		h = rows
	}
	return max(w, 1), max(h, 1)
}

// styleCache avoids building a lipgloss style per cell.
type styleCache map[[2]color.RGBA]lipgloss.Style

func (s styleCache) get(top, bottom color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{top, bottom}
	if st, ok := s[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexOf(top))).
		Background(lipgloss.Color(hexOf(bottom)))
	s[key] = st
	return st
}

func hexOf(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

// RenderHalfBlocks draws img into at most cols×rows cells using upper half
// block glyphs: the foreground paints the upper pixel and the background
// the lower one. The image is sampled nearest-neighbour when it does not
// fit.
func RenderHalfBlocks(img *image.RGBA, cols, rows int) string {
	size := img.Bounds().Size()
	w, h := fitCells(size, cols, rows)
	if w == 0 {
		return ""
	}

	styles := styleCache{}
	var b strings.Builder
	for cy := 0; cy < h; cy++ {
		topY := (2 * cy) * size.Y / (2 * h)
		botY := (2*cy + 1) * size.Y / (2 * h)
		for cx := 0; cx < w; cx++ {
			x := cx * size.X / w
			top := img.RGBAAt(x, topY)
			bottom := img.RGBAAt(x, botY)
			b.WriteString(styles.get(top, bottom).Render("▀"))
		}
		if cy < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
