package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Named colours of the 64-colour watch palette.
var (
	Black               = hex("#000000")
	White               = hex("#FFFFFF")
	DarkGray            = hex("#555555")
	LightGray           = hex("#AAAAAA")
	Rajah               = hex("#FFAA55")
	WindsorTan          = hex("#AA5500")
	Yellow              = hex("#FFFF00")
	Icterine            = hex("#FFFF55")
	PastelYellow        = hex("#FFFFAA")
	DukeBlue            = hex("#0000AA")
	BulgarianRose       = hex("#550000")
	ArmyGreen           = hex("#555500")
	VeryLightBlue       = hex("#5555FF")
	Red                 = hex("#FF0000")
	ChromeYellow        = hex("#FFAA00")
	Brass               = hex("#AAAA55")
	Liberty             = hex("#5555AA")
	ElectricUltramarine = hex("#5500FF")
	BabyBlueEyes        = hex("#AAAAFF")
	OxfordBlue          = hex("#000055")
)

func hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("scene: bad palette entry " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// BodyColors is the lit and shadow colour of a body disk.
type BodyColors struct {
	Lit    color.RGBA
	Shadow color.RGBA
}

// planetColors is indexed by planet, Mercury first.
var planetColors = [8]BodyColors{
	{WindsorTan, BulgarianRose},
	{PastelYellow, ArmyGreen},
	{VeryLightBlue, DukeBlue},
	{Red, BulgarianRose},
	{ChromeYellow, BulgarianRose},
	{Brass, ArmyGreen},
	{Liberty, DukeBlue},
	{ElectricUltramarine, DukeBlue},
}

var moonColors = BodyColors{LightGray, DarkGray}

// starColors are picked at random per star per frame.
var starColors = []color.RGBA{Black, DarkGray, LightGray, White}

// Palette holds every colour one frame needs.
type Palette struct {
	Color bool

	Background  color.RGBA
	Ring        color.RGBA // hour marks and labels
	Orbit       color.RGBA
	Field       color.RGBA // asteroids and the lucky star
	Stars       []color.RGBA
	Sun         []color.RGBA // outermost first
	HandFill    color.RGBA
	HandOutline color.RGBA

	// SaturnRings alternate from the inner ring outwards.
	SaturnRings [2]color.RGBA

	Planets [8]BodyColors
	Moon    BodyColors
}

// PaletteFor selects the colour or monochrome palette.
func PaletteFor(colour, inverted bool) Palette {
	pick := func(inv, normal color.RGBA) color.RGBA {
		if inverted {
			return inv
		}
		return normal
	}
	p := Palette{
		Color:       colour,
		Field:       pick(Black, White),
		HandOutline: pick(White, Black),
		SaturnRings: [2]color.RGBA{pick(White, Black), pick(Black, White)},
	}
	if colour {
		p.Background = pick(BabyBlueEyes, OxfordBlue)
		p.Ring = pick(WindsorTan, Rajah)
		p.Orbit = pick(LightGray, DukeBlue)
		p.Stars = starColors
		p.Sun = []color.RGBA{Yellow, Icterine, PastelYellow}
		p.HandFill = pick(WindsorTan, Yellow)
		p.Planets = planetColors
		p.Moon = moonColors
		return p
	}

	fg := pick(Black, White)
	p.Background = pick(White, Black)
	p.Ring = fg
	p.Orbit = fg
	p.Stars = []color.RGBA{fg}
	p.Sun = []color.RGBA{fg}
	p.HandFill = fg
	for i := range p.Planets {
		p.Planets[i] = BodyColors{Lit: fg, Shadow: fg}
	}
	p.Moon = BodyColors{Lit: fg, Shadow: fg}
	return p
}
