package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCounts(t *testing.T) {
	m := NewCollector()
	m.RecordFrame("raster", 2*time.Millisecond)
	m.RecordFrame("raster", time.Millisecond)
	m.RecordRecompute("hourly")
	m.RecordAnimationStep()
	m.RecordAnimationStep()
	m.SetAnimating(true)
	m.RecordConfigFields(3, 1)
	m.RecordVibration()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"frames", testutil.ToFloat64(m.frames.WithLabelValues("raster")), 2},
		{"recomputes", testutil.ToFloat64(m.recomputes.WithLabelValues("hourly")), 1},
		{"steps", testutil.ToFloat64(m.animSteps), 2},
		{"animating", testutil.ToFloat64(m.animating), 1},
		{"applied", testutil.ToFloat64(m.configChanges.WithLabelValues("applied")), 3},
		{"rejected", testutil.ToFloat64(m.configChanges.WithLabelValues("rejected")), 1},
		{"vibrations", testutil.ToFloat64(m.vibrations), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestNilCollector(t *testing.T) {
	var m *Collector
	m.RecordFrame("raster", time.Millisecond)
	m.RecordRecompute("init")
	m.RecordAnimationStep()
	m.SetAnimating(true)
	m.RecordConfigFields(1, 1)
	m.RecordVibration()
	if m.Registry() != nil {
		t.Error("nil collector returned a registry")
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := NewCollector()
	m.RecordAnimationStep()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "planetarium_animation_steps_total 1") {
		t.Errorf("metrics output missing step counter:\n%s", body)
	}
}
