// Package face ties the clock face together: it reacts to minute ticks,
// drives the start-up sweep, applies configuration messages and renders
// frames.
//
// A Face is owned by one event loop. Tick, Fire, ApplyMessage and Render
// must all be called from that loop; only the Dispatch callback passed in
// Options runs on another goroutine.
package face

import (
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/litescript/planetarium/internal/anim"
	"github.com/litescript/planetarium/internal/astro"
	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/logging"
	"github.com/litescript/planetarium/internal/metrics"
	"github.com/litescript/planetarium/internal/scene"
	"github.com/litescript/planetarium/internal/state"
)

// VibePattern is the hourly pulse: on, off, on.
var VibePattern = []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}

// Haptics plays a vibration pattern of alternating on/off durations.
type Haptics interface {
	Vibrate(pattern []time.Duration)
}

// Saver persists configuration. *config.Store implements it.
type Saver interface {
	Save(cfg config.Configuration) error
}

// Options configures a Face. Zero values pick a real clock, no
// persistence, no haptics and a discarding logger.
type Options struct {
	Clock    clockwork.Clock
	Store    Saver
	Haptics  Haptics
	Metrics  *metrics.Collector
	Logger   *logging.Logger
	Rand     *rand.Rand
	Shading  scene.Shading
	Dispatch func(anim.Token)
}

// Face is the running clock face.
type Face struct {
	clock   clockwork.Clock
	log     *logging.Logger
	store   Saver
	haptics Haptics
	metrics *metrics.Collector

	world *state.World
	comp  *scene.Compositor
	sched *anim.Scheduler
	cfg   config.Configuration

	// settled is set once the start-up sweep has finished; from then on
	// minute ticks drive the displayed time.
	settled bool
	dirty   bool
}

// New creates a face for cfg. Call Load before the first frame.
func New(cfg config.Configuration, opts Options) *Face {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(clock.Now().UnixNano()), rand.Uint64()))
	}

	w := state.New()
	w.Stars = scene.GenerateStars(rng)
	w.Asteroids = scene.GenerateAsteroids(rng, w.Planets)

	comp := scene.NewCompositor(rng)
	comp.Shading = opts.Shading

	return &Face{
		clock:   clock,
		log:     log,
		store:   opts.Store,
		haptics: opts.Haptics,
		metrics: opts.Metrics,
		world:   w,
		comp:    comp,
		sched:   anim.NewScheduler(clock, opts.Dispatch),
		cfg:     cfg,
	}
}

// Load applies the current configuration: it recomputes every body, shows
// the real time and starts the sweep when the settings ask for one. A sweep
// interrupted by a settings change restarts from midnight, as does infinite
// rotation.
func (f *Face) Load() {
	f.sched.Stop()

	now := f.clock.Now()
	f.recompute(now, "load")
	f.log.Debug("current config: %s", f.cfg)
	f.dirty = true

	switch {
	case f.cfg.InfiniteRotation:
		f.settled = false
		f.start(anim.DisplayedTime{}, true)
	case f.settled || !f.cfg.Animate:
		f.settled = true
	default:
		f.start(anim.DisplayedTime{}, false)
	}
	if !f.sched.Animating() {
		f.settled = true
		f.sched.SetDisplayed(anim.At(now))
	}
	f.metrics.SetAnimating(f.sched.Animating())
}

func (f *Face) start(from anim.DisplayedTime, infinite bool) {
	before := f.sched.Steps()
	f.sched.Start(from, infinite)
	if f.sched.Steps() > before {
		f.metrics.RecordAnimationStep()
	}
}

// Tick handles a minute tick at now.
func (f *Face) Tick(now time.Time) {
	yearChanged := f.world.YearChanged(now)
	if astro.ShouldRecompute(yearChanged, now.Minute()) {
		trigger := "hourly"
		if yearChanged {
			trigger = "year"
		}
		f.recompute(now, trigger)
	}

	if f.cfg.Vibrate && now.Minute() == 0 && f.haptics != nil {
		f.haptics.Vibrate(VibePattern)
		f.metrics.RecordVibration()
	}

	if f.settled || yearChanged {
		f.sched.SetDisplayed(anim.At(now))
		f.dirty = true
	}
}

// Fire runs the animation step for tok. It reports whether the frame
// changed.
func (f *Face) Fire(tok anim.Token) bool {
	moved := f.sched.Fire(tok)
	if moved {
		f.metrics.RecordAnimationStep()
		f.dirty = true
	}
	if !f.settled && !f.sched.Animating() {
		f.settled = true
		f.sched.SetDisplayed(anim.At(f.clock.Now()))
		f.metrics.SetAnimating(false)
		f.log.Debug("sweep finished at %s", f.sched.Displayed())
		return true
	}
	return moved
}

// ApplyMessage applies an inbound configuration message, persists the
// result and reloads the face. Rejected fields are logged and returned;
// the rest of the message still applies.
func (f *Face) ApplyMessage(msg config.Message) []error {
	for _, k := range msg.Keys() {
		f.log.Debug("KEY %s=%s", k, msg[k])
	}
	cfg, errs := config.Apply(f.cfg, msg)
	for _, err := range errs {
		f.log.Warn("message field dropped: %v", err)
	}
	f.metrics.RecordConfigFields(len(msg)-len(errs), len(errs))

	if f.store != nil {
		if err := f.store.Save(cfg); err != nil {
			f.log.Error("save settings: %v", err)
			errs = append(errs, err)
		}
	}
	f.UpdateConfiguration(cfg)
	return errs
}

// UpdateConfiguration replaces the settings and reloads the face. A
// running sweep is cancelled; infinite rotation restarts from midnight.
func (f *Face) UpdateConfiguration(cfg config.Configuration) {
	f.cfg = cfg
	f.Load()
}

// Render draws the current frame onto c.
func (f *Face) Render(c canvas.Canvas) {
	start := f.clock.Now()
	f.comp.Render(c, f.world, f.cfg, f.sched.Displayed())
	surface := "mono"
	if c.SupportsColor() {
		surface = "colour"
	}
	f.metrics.RecordFrame(surface, f.clock.Since(start))
	f.dirty = false
}

// Stop cancels the sweep timer. It is safe to call more than once.
func (f *Face) Stop() {
	f.sched.Stop()
	f.metrics.SetAnimating(false)
}

// Dirty reports whether the frame changed since the last Render.
func (f *Face) Dirty() bool { return f.dirty }

// Config returns the active settings.
func (f *Face) Config() config.Configuration { return f.cfg }

// World returns the world state. Callers must not retain it across loop
// iterations.
func (f *Face) World() *state.World { return f.world }

// Displayed returns the time the hand shows.
func (f *Face) Displayed() anim.DisplayedTime { return f.sched.Displayed() }

// Animating reports whether the sweep is running.
func (f *Face) Animating() bool { return f.sched.Animating() }

// Remaining estimates the time left in the sweep.
func (f *Face) Remaining() time.Duration { return f.sched.Remaining() }

// Now returns the face clock's time.
func (f *Face) Now() time.Time { return f.clock.Now() }

func (f *Face) recompute(now time.Time, trigger string) {
	f.world.Recompute(now, f.cfg.LuckyDate)
	f.metrics.RecordRecompute(trigger)
	for _, p := range f.world.Planets {
		f.log.Debug("planet %s: angle %d", p.Name, p.Angle)
	}
	if f.world.LuckyStar.Visible() {
		y, m, d := astro.ParseLuckyDate(f.cfg.LuckyDate, now)
		f.log.Debug("lucky star date %04d-%02d-%02d: angle %d", y, m, d, f.world.LuckyStar.Angle)
	}
	f.dirty = true
}
