// Package astro computes mean orbital angles for the bodies on the face.
//
// Positions use mean anomaly only: the angle grows linearly from the J2000
// element M at rate Md per day, with no equation-of-centre correction.
package astro

import "github.com/litescript/planetarium/internal/fixedtrig"

// PlanetCount is the number of planets on the face.
const PlanetCount = 8

// Planet indices into the table returned by Planets.
const (
	Mercury = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

// Body is a celestial body with display geometry, J2000 mean anomaly
// elements and the angle computed for the current epoch day.
type Body struct {
	Name   string
	Radius int // Orbit radius on the face, in pixels
	Size   int // Disk radius in pixels; for the lucky star 0 hides it

	M  float64 // Mean anomaly at epoch (deg)
	Md float64 // Mean anomaly rate (deg/day)
	E  float64 // Orbital eccentricity (not used for the angle)
	Ed float64 // Eccentricity rate

	Angle int   // Degrees in [0, 360)
	Sin   int32 // fixedtrig.Sin of Angle
	Cos   int32 // fixedtrig.Cos of Angle
}

// Visible reports whether the body should be drawn.
func (b Body) Visible() bool {
	return b.Size != 0
}

// TrigAngle returns Angle in fixedtrig units.
func (b Body) TrigAngle() int32 {
	return fixedtrig.FromDegrees(b.Angle)
}

// Planets returns the eight planets, Mercury first.
func Planets() [PlanetCount]Body {
	return [PlanetCount]Body{
		{Name: "Mercury", Radius: 20, Size: 3, M: 252.25084, Md: 4.0923344368, E: 0.205635, Ed: 5.59e-10},
		{Name: "Venus", Radius: 30, Size: 4, M: 181.97973, Md: 1.602130474, E: 0.006773, Ed: -1.302e-9},
		{Name: "Earth", Radius: 50, Size: 6, M: 100.46435, Md: 0.985609101, E: 0.016709, Ed: -1.151e-9},
		{Name: "Mars", Radius: 70, Size: 5, M: 355.45332, Md: 0.524033035, E: 0.093405, Ed: 2.516e-9},
		{Name: "Jupiter", Radius: 85, Size: 7, M: 34.40438, Md: 0.0830853001, E: 0.048498, Ed: 4.469e-9},
		{Name: "Saturn", Radius: 100, Size: 6, M: 49.94432, Md: 0.033470629, E: 0.055546, Ed: -9.499e-9},
		{Name: "Uranus", Radius: 115, Size: 4, M: 313.23218, Md: 0.011731294, E: 0.047318, Ed: 7.45e-9},
		{Name: "Neptune", Radius: 130, Size: 4, M: 304.88003, Md: 0.0059810572, E: 0.008606, Ed: 2.15e-9},
	}
}

// Moon returns Earth's moon; its radius is relative to Earth.
func Moon() Body {
	return Body{Name: "Moon", Radius: 10, Size: 2, M: 64.975464, Md: 13.0649929509, E: 0.0549}
}

// LuckyStar returns the lucky star body. It shares Earth's elements so it
// marks where Earth stood on the configured date. It starts hidden.
func LuckyStar() Body {
	return Body{Name: "Star", Radius: 50, Size: 0, M: 100.46435, Md: 0.985609101, E: 0.016709, Ed: -1.151e-9}
}
