package face

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/planetarium/internal/anim"
	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/metrics"
)

type recordingHaptics struct {
	patterns [][]time.Duration
}

func (h *recordingHaptics) Vibrate(p []time.Duration) {
	h.patterns = append(h.patterns, p)
}

type memStore struct {
	saved []config.Configuration
	err   error
}

func (s *memStore) Save(cfg config.Configuration) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, cfg)
	return nil
}

type harness struct {
	face    *Face
	clock   *clockwork.FakeClock
	tokens  chan anim.Token
	haptics *recordingHaptics
	store   *memStore
}

func newHarness(t *testing.T, cfg config.Configuration, now time.Time) *harness {
	t.Helper()
	h := &harness{
		clock:   clockwork.NewFakeClockAt(now),
		tokens:  make(chan anim.Token, 4),
		haptics: &recordingHaptics{},
		store:   &memStore{},
	}
	h.face = New(cfg, Options{
		Clock:    h.clock,
		Store:    h.store,
		Haptics:  h.haptics,
		Metrics:  metrics.NewCollector(),
		Rand:     rand.New(rand.NewPCG(1, 1)),
		Dispatch: func(tok anim.Token) { h.tokens <- tok },
	})
	h.face.Load()
	return h
}

// drain fires animation steps until the face settles.
func (h *harness) drain(t *testing.T, limit int) int {
	t.Helper()
	steps := 0
	for h.face.Animating() {
		if steps >= limit {
			t.Fatalf("sweep still running after %d steps at %v", limit, h.face.Displayed())
		}
		h.clock.Advance(anim.Interval)
		select {
		case tok := <-h.tokens:
			h.face.Fire(tok)
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for animation timer")
		}
		steps++
	}
	return steps
}

func at(h, m int) time.Time {
	return time.Date(2024, 3, 20, h, m, 0, 0, time.UTC)
}

func TestLoadWithAnimationSweeps(t *testing.T) {
	h := newHarness(t, config.Default(), at(3, 37))

	if !h.face.Animating() {
		t.Fatal("default settings should start the sweep")
	}
	if got := h.face.Displayed(); got != (anim.DisplayedTime{Hour: 0, Minute: 10}) {
		t.Errorf("first step = %v, want 00:10", got)
	}
	h.drain(t, 100)
	if got := h.face.Displayed(); got != anim.At(at(3, 37)) {
		t.Errorf("settled at %v, want 03:37", got)
	}
}

func TestLoadWithoutAnimationShowsRealTime(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, at(15, 20))

	if h.face.Animating() {
		t.Error("animation disabled but sweep running")
	}
	if got := h.face.Displayed(); got != anim.At(at(15, 20)) {
		t.Errorf("Displayed() = %v, want 15:20", got)
	}
	if !h.face.Dirty() {
		t.Error("load should request a redraw")
	}
}

func TestTickPolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	cfg.Vibrate = true
	h := newHarness(t, cfg, at(9, 58))
	loaded := h.face.World().Computed

	h.face.Tick(at(9, 59))
	if h.face.World().Computed != loaded {
		t.Error("recomputed on a non-hourly tick")
	}
	if len(h.haptics.patterns) != 0 {
		t.Error("vibrated off the hour")
	}
	if got := h.face.Displayed(); got != anim.At(at(9, 59)) {
		t.Errorf("Displayed() = %v, want 09:59", got)
	}

	h.face.Tick(at(10, 0))
	if !h.face.World().Computed.Equal(at(10, 0)) {
		t.Error("hourly tick did not recompute")
	}
	if len(h.haptics.patterns) != 1 {
		t.Fatalf("vibrations = %d, want 1", len(h.haptics.patterns))
	}
	if got := h.haptics.patterns[0]; len(got) != 3 || got[0] != 100*time.Millisecond {
		t.Errorf("pattern = %v, want 3x100ms", got)
	}
}

func TestTickDuringSweepKeepsDisplayedTime(t *testing.T) {
	h := newHarness(t, config.Default(), at(3, 37))
	before := h.face.Displayed()
	h.face.Tick(at(3, 38))
	if h.face.Displayed() != before {
		t.Errorf("tick moved the hand mid-sweep: %v -> %v", before, h.face.Displayed())
	}
}

func TestYearRolloverRecomputes(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC))

	ny := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.face.Tick(ny)
	if !h.face.World().Computed.Equal(ny) {
		t.Error("year rollover did not recompute")
	}
}

func TestApplyMessagePersists(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, at(3, 37))

	errs := h.face.ApplyMessage(config.Message{"inv": "yes", "date": "1990", "astro": "yes"})
	if len(errs) != 1 || !errors.Is(errs[0], config.ErrInvalidDate) {
		t.Fatalf("errors = %v, want one ErrInvalidDate", errs)
	}
	got := h.face.Config()
	if !got.Inverted || !got.Asteroids || got.LuckyDate != config.UnsetDate {
		t.Errorf("Config() = %+v", got)
	}
	if len(h.store.saved) != 1 || h.store.saved[0] != got {
		t.Errorf("saved = %+v, want [%+v]", h.store.saved, got)
	}
}

func TestApplyMessageSaveFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, at(3, 37))
	h.store.err = errors.New("disk full")

	errs := h.face.ApplyMessage(config.Message{"stars": "no"})
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want the save failure", errs)
	}
	if h.face.Config().Stars {
		t.Error("settings should still apply when saving fails")
	}
}

func TestInfiniteRotationToggle(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, at(3, 37))

	h.face.ApplyMessage(config.Message{"infr": "yes"})
	if !h.face.Animating() {
		t.Fatal("infinite rotation should animate")
	}
	if got := h.face.Displayed(); got != (anim.DisplayedTime{Hour: 0, Minute: 5}) {
		t.Errorf("Displayed() = %v, want 00:05", got)
	}

	h.clock.Advance(anim.Interval)
	stale := <-h.tokens

	h.face.ApplyMessage(config.Message{"infr": "no"})
	if h.face.Animating() {
		t.Error("turning infinite rotation off with animation disabled should settle")
	}
	if h.face.Fire(stale) {
		t.Error("stale token fired after settings change")
	}
	if got := h.face.Displayed(); got != anim.At(at(3, 37)) {
		t.Errorf("Displayed() = %v, want 03:37", got)
	}
}

func TestInfiniteRotationOffRestartsSweep(t *testing.T) {
	h := newHarness(t, config.Default(), at(0, 7))
	h.face.ApplyMessage(config.Message{"infr": "yes"})
	h.clock.Advance(anim.Interval)
	h.face.Fire(<-h.tokens)
	if got := h.face.Displayed(); got != (anim.DisplayedTime{Hour: 0, Minute: 10}) {
		t.Fatalf("rotation at %v, want 00:10", got)
	}

	h.face.ApplyMessage(config.Message{"infr": "no"})
	if !h.face.Animating() {
		t.Fatal("sweep should restart after leaving infinite rotation")
	}
	if got := h.face.Displayed(); got != (anim.DisplayedTime{Hour: 0, Minute: 1}) {
		t.Errorf("first step = %v, want 00:01", got)
	}

	prev := h.face.Displayed()
	for steps := 0; h.face.Animating(); steps++ {
		if steps > 10 {
			t.Fatalf("sweep still running at %v", h.face.Displayed())
		}
		h.clock.Advance(anim.Interval)
		h.face.Fire(<-h.tokens)
		got := h.face.Displayed()
		if got.Hour != 0 || got.Minute < prev.Minute || got.Minute > 7 {
			t.Fatalf("sweep went from %v to %v, past 00:07", prev, got)
		}
		prev = got
	}
	if got := h.face.Displayed(); got != anim.At(at(0, 7)) {
		t.Errorf("settled at %v, want 00:07", got)
	}
}

func TestNoVibrationOnLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Vibrate = true
	h := newHarness(t, cfg, at(10, 0))
	h.face.ApplyMessage(config.Message{"stars": "no"})
	if len(h.haptics.patterns) != 0 {
		t.Errorf("vibrations = %d, want none outside minute ticks", len(h.haptics.patterns))
	}

	h.face.Tick(at(11, 0))
	if len(h.haptics.patterns) != 1 {
		t.Errorf("vibrations after hourly tick = %d, want 1", len(h.haptics.patterns))
	}
}

func TestRenderHidesHandInInfiniteRotation(t *testing.T) {
	cfg := config.Default()
	cfg.Animate = false
	h := newHarness(t, cfg, at(3, 37))

	rec := canvas.NewRecorder(144, 168, true)
	h.face.Render(rec)
	if rec.Count(canvas.OpFillPath) != 1 {
		t.Errorf("hand fills = %d, want 1", rec.Count(canvas.OpFillPath))
	}
	if h.face.Dirty() {
		t.Error("Render should clear the dirty flag")
	}

	h.face.ApplyMessage(config.Message{"infr": "yes"})
	rec.Reset()
	h.face.Render(rec)
	if rec.Count(canvas.OpFillPath) != 0 {
		t.Error("hand drawn in infinite rotation")
	}
	h.face.Stop()
	h.face.Stop()
}
