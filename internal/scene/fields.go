package scene

import (
	"image"
	"math/rand/v2"

	"github.com/litescript/planetarium/internal/astro"
	"github.com/litescript/planetarium/internal/fixedtrig"
	"github.com/litescript/planetarium/internal/state"
)

// Random ranges for the generated fields.
const (
	starMinRadius  = 20
	starRadiusSpan = 130
)

// fieldPoint returns the offset of point i of n spread evenly around the
// sun at radius.
func fieldPoint(i, n, radius int) image.Point {
	a := int32(fixedtrig.FullTurn * i / n)
	return polar(image.Point{}, fixedtrig.Sin(a), fixedtrig.Cos(a), radius)
}

// GenerateStars spreads the background stars evenly by angle at random
// distances from the sun.
func GenerateStars(rng *rand.Rand) [state.StarCount]image.Point {
	var stars [state.StarCount]image.Point
	for i := range stars {
		stars[i] = fieldPoint(i, state.StarCount, rng.IntN(starRadiusSpan)+starMinRadius)
	}
	return stars
}

// GenerateAsteroids places the belt between Mars and Jupiter, jittering
// each asteroid inwards or outwards by up to 4 pixels.
func GenerateAsteroids(rng *rand.Rand, planets [astro.PlanetCount]astro.Body) [state.AsteroidCount]image.Point {
	radius := (planets[astro.Mars].Radius+planets[astro.Jupiter].Radius)/2 + 1
	var belt [state.AsteroidCount]image.Point
	for i := range belt {
		belt[i] = fieldPoint(i, state.AsteroidCount, radius+beltJitter(rng.IntN(100)))
	}
	return belt
}

// beltJitter maps a roll in [0,100) to a radial offset.
func beltJitter(roll int) int {
	switch {
	case roll < 10:
		return -4
	case roll < 30:
		return -2
	case roll > 90:
		return 4
	case roll > 70:
		return 2
	default:
		return 0
	}
}
