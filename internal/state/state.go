// Package state holds the world the face renders: the bodies with their
// current angles and the star and asteroid fields.
package state

import (
	"image"
	"time"

	"github.com/litescript/planetarium/internal/astro"
)

const (
	// StarCount is the size of the background starfield.
	StarCount = 50
	// AsteroidCount is the size of the asteroid belt.
	AsteroidCount = 400
)

// World is the aggregate read by the compositor. It is owned by a single
// event loop and carries no locking.
type World struct {
	Planets   [astro.PlanetCount]astro.Body
	Moon      astro.Body
	LuckyStar astro.Body

	// Field points are offsets from the sun.
	Stars     [StarCount]image.Point
	Asteroids [AsteroidCount]image.Point

	// EpochDay and Computed describe the last recompute.
	EpochDay int
	Computed time.Time
}

// New returns a world with the static body table and empty fields. Angles
// stay zero until the first Recompute.
func New() *World {
	return &World{
		Planets:   astro.Planets(),
		Moon:      astro.Moon(),
		LuckyStar: astro.LuckyStar(),
	}
}

// Recompute updates every body for now and positions the lucky star for
// luckyDate. A date whose digits are all zero hides the lucky star.
func (w *World) Recompute(now time.Time, luckyDate string) {
	day := astro.EpochDay(now.Year(), int(now.Month()), now.Day(), now.Hour())
	for i := range w.Planets {
		astro.Recompute(&w.Planets[i], day)
	}
	astro.Recompute(&w.Moon, day)
	w.UpdateLuckyStar(now, luckyDate)
	w.EpochDay = day
	w.Computed = now
}

// UpdateLuckyStar positions the lucky star only.
func (w *World) UpdateLuckyStar(now time.Time, luckyDate string) {
	if !astro.LuckyDateSet(luckyDate) {
		w.LuckyStar.Size = 0
		return
	}
	w.LuckyStar.Size = 1
	astro.Recompute(&w.LuckyStar, astro.LuckyEpochDay(luckyDate, now))
}

// YearChanged reports whether now falls in a different year than the last
// recompute. A world that was never computed reports true.
func (w *World) YearChanged(now time.Time) bool {
	return w.Computed.IsZero() || w.Computed.Year() != now.Year()
}

// BodyAngle is one row of an angle listing.
type BodyAngle struct {
	Name  string
	Angle int
	Sin   int32
	Cos   int32
}

// Snapshot lists the current angles: planets, then the moon, then the
// lucky star when visible.
func (w *World) Snapshot() []BodyAngle {
	out := make([]BodyAngle, 0, astro.PlanetCount+2)
	add := func(b astro.Body) {
		out = append(out, BodyAngle{Name: b.Name, Angle: b.Angle, Sin: b.Sin, Cos: b.Cos})
	}
	for _, p := range w.Planets {
		add(p)
	}
	add(w.Moon)
	if w.LuckyStar.Visible() {
		add(w.LuckyStar)
	}
	return out
}
