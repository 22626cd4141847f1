// Package metrics exposes face activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records face activity. A nil *Collector is valid and records
// nothing.
type Collector struct {
	registry *prometheus.Registry

	frames        *prometheus.CounterVec
	renderSeconds prometheus.Histogram
	recomputes    *prometheus.CounterVec
	animSteps     prometheus.Counter
	animating     prometheus.Gauge
	configChanges *prometheus.CounterVec
	vibrations    prometheus.Counter
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planetarium_frames_total",
				Help: "Frames rendered",
			},
			[]string{"surface"},
		),
		renderSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "planetarium_render_duration_seconds",
				Help:    "Time spent composing a frame",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
			},
		),
		recomputes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planetarium_recomputes_total",
				Help: "Orbital angle recomputations by trigger",
			},
			[]string{"trigger"},
		),
		animSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planetarium_animation_steps_total",
			Help: "Animation steps taken",
		}),
		animating: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "planetarium_animating",
			Help: "1 while the displayed time is sweeping",
		}),
		configChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planetarium_config_fields_total",
				Help: "Configuration message fields by outcome",
			},
			[]string{"result"},
		),
		vibrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "planetarium_vibrations_total",
			Help: "Hourly vibration pulses",
		}),
	}

	m.registry.MustRegister(
		m.frames,
		m.renderSeconds,
		m.recomputes,
		m.animSteps,
		m.animating,
		m.configChanges,
		m.vibrations,
	)
	return m
}

// Registry returns the registry the collector registers into.
func (m *Collector) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordFrame counts one frame rendered onto surface.
func (m *Collector) RecordFrame(surface string, d time.Duration) {
	if m == nil {
		return
	}
	m.frames.WithLabelValues(surface).Inc()
	m.renderSeconds.Observe(d.Seconds())
}

// RecordRecompute counts one recompute triggered by trigger.
func (m *Collector) RecordRecompute(trigger string) {
	if m == nil {
		return
	}
	m.recomputes.WithLabelValues(trigger).Inc()
}

// RecordAnimationStep counts one animation step.
func (m *Collector) RecordAnimationStep() {
	if m == nil {
		return
	}
	m.animSteps.Inc()
}

// SetAnimating reports the scheduler state.
func (m *Collector) SetAnimating(on bool) {
	if m == nil {
		return
	}
	v := 0.0
	if on {
		v = 1
	}
	m.animating.Set(v)
}

// RecordConfigFields counts applied and rejected message fields.
func (m *Collector) RecordConfigFields(applied, rejected int) {
	if m == nil {
		return
	}
	m.configChanges.WithLabelValues("applied").Add(float64(applied))
	m.configChanges.WithLabelValues("rejected").Add(float64(rejected))
}

// RecordVibration counts one vibration pulse.
func (m *Collector) RecordVibration() {
	if m == nil {
		return
	}
	m.vibrations.Inc()
}

// Handler serves the collector's registry.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
