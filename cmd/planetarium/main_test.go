package main

import (
	"bytes"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/face"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    image.Point
		wantErr bool
	}{
		{"144x168", image.Pt(144, 168), false},
		{"200X200", image.Pt(200, 200), false},
		{"10x1000", image.Pt(64, 400), false},
		{"144", image.Point{}, true},
		{"ax168", image.Point{}, true},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWriteAngles(t *testing.T) {
	at := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := config.Default()
	cfg.Animate = false
	cfg.LuckyDate = "20000101"
	f := face.New(cfg, face.Options{Clock: clockwork.NewFakeClockAt(at)})
	f.Load()

	var buf bytes.Buffer
	if err := writeAngles(&buf, f, at); err != nil {
		t.Fatalf("writeAngles: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Earth", "258", "Moon", "Star", "epoch day"} {
		if !strings.Contains(out, want) {
			t.Errorf("angle table missing %q:\n%s", want, out)
		}
	}
}
