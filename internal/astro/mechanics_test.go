package astro

import (
	"testing"
	"time"

	"github.com/litescript/planetarium/internal/fixedtrig"
)

func TestRecomputeEarth(t *testing.T) {
	earth := Planets()[Earth]
	Recompute(&earth, 1)

	// 360 - (100.46435 + 0.985609101) = 258.55...
	if earth.Angle != 258 {
		t.Errorf("Angle = %d, want 258", earth.Angle)
	}
	trig := fixedtrig.FromDegrees(258)
	if earth.Sin != fixedtrig.Sin(trig) || earth.Cos != fixedtrig.Cos(trig) {
		t.Errorf("Sin/Cos = %d/%d, want %d/%d", earth.Sin, earth.Cos, fixedtrig.Sin(trig), fixedtrig.Cos(trig))
	}
	if earth.Sin >= 0 || earth.Cos >= 0 {
		t.Errorf("258° should have negative sine and cosine, got %d/%d", earth.Sin, earth.Cos)
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	for i, p := range Planets() {
		a, b := p, p
		Recompute(&a, 9420)
		Recompute(&b, 9420)
		Recompute(&b, 9420)
		if a != b {
			t.Errorf("planet %d: repeated Recompute changed state: %+v vs %+v", i, a, b)
		}
	}
}

func TestRecomputeAngleRange(t *testing.T) {
	planets := Planets()
	bodies := append(planets[:], Moon(), LuckyStar())
	for day := -20000; day < 20000; day += 37 {
		for i := range bodies {
			Recompute(&bodies[i], day)
			if bodies[i].Angle < 0 || bodies[i].Angle >= 360 {
				t.Fatalf("%s day %d: Angle %d outside [0,360)", bodies[i].Name, day, bodies[i].Angle)
			}
		}
	}
}

func TestRecomputeWrapsFullCircle(t *testing.T) {
	b := Body{Name: "fixed", M: 0, Md: 0}
	Recompute(&b, 100)
	if b.Angle != 0 {
		t.Errorf("Angle = %d, want 0 for a zero anomaly", b.Angle)
	}
	if b.Sin != 0 || b.Cos != fixedtrig.MaxRatio {
		t.Errorf("Sin/Cos = %d/%d, want 0/%d", b.Sin, b.Cos, fixedtrig.MaxRatio)
	}
}

func TestShouldRecompute(t *testing.T) {
	tests := []struct {
		yearChanged bool
		minute      int
		want        bool
	}{
		{false, 0, true},
		{false, 1, false},
		{false, 59, false},
		{true, 17, true},
		{true, 0, true},
	}
	for _, tt := range tests {
		if got := ShouldRecompute(tt.yearChanged, tt.minute); got != tt.want {
			t.Errorf("ShouldRecompute(%v, %d) = %v, want %v", tt.yearChanged, tt.minute, got, tt.want)
		}
	}
}

func TestParseLuckyDate(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.Local)

	tests := []struct {
		name                string
		in                  string
		wantY, wantM, wantD int
	}{
		{"full date", "19900515", 1990, 5, 15},
		{"unset falls back to today", "00000000", 2026, 10, 19},
		{"year only", "19900000", 1990, 10, 19},
		{"month and day only", "00000704", 2026, 7, 4},
		{"day only", "00000001", 2026, 10, 1},
		{"short string", "2001", 2001, 10, 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d := ParseLuckyDate(tt.in, now)
			if y != tt.wantY || m != tt.wantM || d != tt.wantD {
				t.Errorf("ParseLuckyDate(%q) = %d-%d-%d, want %d-%d-%d",
					tt.in, y, m, d, tt.wantY, tt.wantM, tt.wantD)
			}
		})
	}
}

func TestLuckyDateSet(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{UnsetDate, false},
		{"", false},
		{"19900515", true},
		{"00000001", true},
		{"00010000", true},
	}
	for _, tt := range tests {
		if got := LuckyDateSet(tt.in); got != tt.want {
			t.Errorf("LuckyDateSet(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLuckyEpochDayUsesNoon(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 0, 0, 0, time.Local)
	got := LuckyEpochDay("20000101", now)
	if got != EpochDay(2000, 1, 1, LuckyStarHour) {
		t.Errorf("LuckyEpochDay = %d, want %d", got, EpochDay(2000, 1, 1, LuckyStarHour))
	}
	if got != 1 {
		t.Errorf("LuckyEpochDay(20000101) = %d, want 1", got)
	}
}
