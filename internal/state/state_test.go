package state

import (
	"testing"
	"time"

	"github.com/litescript/planetarium/internal/astro"
)

func TestRecomputeUpdatesAllBodies(t *testing.T) {
	w := New()
	now := time.Date(2000, 1, 1, 0, 30, 0, 0, time.UTC)
	w.Recompute(now, "00000000")

	if w.EpochDay != 1 {
		t.Errorf("EpochDay = %d, want 1", w.EpochDay)
	}
	if got := w.Planets[astro.Earth].Angle; got != 258 {
		t.Errorf("Earth angle = %d, want 258", got)
	}
	for i, p := range w.Planets {
		want := astro.Planets()[i]
		astro.Recompute(&want, 1)
		if p != want {
			t.Errorf("planet %d = %+v, want %+v", i, p, want)
		}
	}
	if w.Moon.Sin == 0 && w.Moon.Cos == 0 {
		t.Error("moon trig not computed")
	}
}

func TestLuckyStar(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		date    string
		visible bool
		angle   int
	}{
		{"unset", "00000000", false, 0},
		{"millennium", "20000101", true, 258},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New()
			w.Recompute(now, tt.date)
			if w.LuckyStar.Visible() != tt.visible {
				t.Fatalf("Visible() = %v, want %v", w.LuckyStar.Visible(), tt.visible)
			}
			if tt.visible && w.LuckyStar.Angle != tt.angle {
				t.Errorf("Angle = %d, want %d", w.LuckyStar.Angle, tt.angle)
			}
		})
	}
}

func TestLuckyStarHidesAgain(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	w := New()
	w.Recompute(now, "19900515")
	if !w.LuckyStar.Visible() {
		t.Fatal("lucky star should be visible")
	}
	w.UpdateLuckyStar(now, "00000000")
	if w.LuckyStar.Visible() {
		t.Error("lucky star should hide when the date is cleared")
	}
	if n := len(w.Snapshot()); n != astro.PlanetCount+1 {
		t.Errorf("Snapshot has %d rows, want %d", n, astro.PlanetCount+1)
	}
}

func TestYearChanged(t *testing.T) {
	w := New()
	dec := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)
	if !w.YearChanged(dec) {
		t.Error("uncomputed world should report a year change")
	}
	w.Recompute(dec, "00000000")
	if w.YearChanged(dec.Add(30 * time.Second)) {
		t.Error("same year reported as changed")
	}
	if !w.YearChanged(dec.Add(time.Minute)) {
		t.Error("new year not detected")
	}
}
