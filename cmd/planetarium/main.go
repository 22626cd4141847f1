// Command planetarium shows a solar-system clock face in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"golang.org/x/term"

	"github.com/litescript/planetarium/internal/anim"
	"github.com/litescript/planetarium/internal/astro"
	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/face"
	"github.com/litescript/planetarium/internal/logging"
	"github.com/litescript/planetarium/internal/metrics"
	"github.com/litescript/planetarium/internal/scene"
	"github.com/litescript/planetarium/internal/ui"
	"github.com/litescript/planetarium/internal/version"
)

const (
	defaultSize = "144x168"
	minSide     = 64
	maxSide     = 400
)

// assignments collects repeated -set flags.
type assignments []string

func (a *assignments) String() string { return strings.Join(*a, ",") }

func (a *assignments) Set(v string) error {
	*a = append(*a, v)
	return nil
}

func main() {
	var sets assignments
	configPath := flag.String("config", "", "Settings file (default: user config dir)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file (TUI mode discards logs otherwise)")
	mono := flag.Bool("mono", false, "Render with the monochrome palette")
	sizeFlag := flag.String("size", defaultSize, "Face size in pixels, WxH")
	shadingFlag := flag.String("shading", "arcs", "Planet shading in colour: arcs or solid")
	snapshotPath := flag.String("snapshot", "", "Render one frame to a PNG file (use - for stdout)")
	anglesMode := flag.Bool("angles", false, "Print the computed body angles")
	atFlag := flag.String("at", "", "Time for headless modes (RFC3339, default now)")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Var(&sets, "set", "Apply a setting, key=value (repeatable; persisted)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("planetarium v%s\n", version.Version)
		return
	}

	size, err := parseSize(*sizeFlag)
	if err != nil {
		fatalf("invalid -size: %v", err)
	}
	shading, ok := scene.ParseShading(*shadingFlag)
	if !ok {
		fatalf("invalid -shading %q (want arcs or solid)", *shadingFlag)
	}

	headless := *snapshotPath != "" || *anglesMode

	// Set up logging
	logger := logging.New(logging.ParseLevel(*logLevel))
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatalf("open log file: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	} else if !headless {
		logger.SetOutput(io.Discard)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, store := loadSettings(*configPath, sets, logger.Named("config"))

	var collector *metrics.Collector
	if *metricsAddr != "" {
		collector = metrics.NewCollector()
		go func() {
			if err := collector.Serve(ctx, *metricsAddr); err != nil {
				logger.Error("metrics server: %v", err)
			}
		}()
	}

	if headless {
		at := time.Now()
		if *atFlag != "" {
			at, err = time.Parse(time.RFC3339, *atFlag)
			if err != nil {
				fatalf("invalid -at: %v", err)
			}
		}
		if err := runHeadless(cfg, at, size, !*mono, shading, *snapshotPath, *anglesMode, collector, logger); err != nil {
			fatalf("%v", err)
		}
		return
	}

	fires := make(chan anim.Token, 4)
	var haptics face.Haptics
	if term.IsTerminal(int(os.Stdout.Fd())) {
		haptics = ui.Bell{Out: os.Stdout}
	}
	f := face.New(cfg, face.Options{
		Store:   store,
		Haptics: haptics,
		Metrics: collector,
		Logger:  logger.Named("face"),
		Shading: shading,
		Dispatch: func(tok anim.Token) {
			select {
			case fires <- tok:
			case <-ctx.Done():
			}
		},
	})
	f.Load()
	defer f.Stop()

	model := ui.New(f, fires, size, !*mono, logger.Named("ui"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings reads the stored settings and applies -set assignments
// through the message adapter, persisting the result.
func loadSettings(path string, sets []string, logger *logging.Logger) (config.Configuration, *config.Store) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("%v; settings will not persist", err)
			return applySets(config.Default(), sets, nil, logger), nil
		}
		path = p
	}
	store := config.NewStore(path)
	cfg, err := store.Load()
	if err != nil {
		logger.Warn("%v", err)
	}
	return applySets(cfg, sets, store, logger), store
}

func applySets(cfg config.Configuration, sets []string, store *config.Store, logger *logging.Logger) config.Configuration {
	if len(sets) == 0 {
		return cfg
	}
	msg := config.Message{}
	for _, s := range sets {
		k, v, err := config.ParseAssignment(s)
		if err != nil {
			fatalf("invalid -set: %v", err)
		}
		msg[k] = v
	}
	cfg, errs := config.Apply(cfg, msg)
	for _, err := range errs {
		fatalf("invalid -set: %v", err)
	}
	if store != nil {
		if err := store.Save(cfg); err != nil {
			logger.Error("save settings: %v", err)
		}
	}
	logger.Debug("settings after -set: %s", cfg)
	return cfg
}

// runHeadless renders or lists one instant without starting the TUI.
func runHeadless(cfg config.Configuration, at time.Time, size image.Point, colour bool, shading scene.Shading,
	snapshotPath string, angles bool, collector *metrics.Collector, logger *logging.Logger) error {
	// A still frame shows the real time; the sweep only makes sense live.
	still := cfg
	still.Animate = false

	clock := clockwork.NewFakeClockAt(at)
	f := face.New(still, face.Options{
		Clock:   clock,
		Metrics: collector,
		Logger:  logger.Named("face"),
		Rand:    rand.New(rand.NewPCG(uint64(at.Unix()), 0)),
		Shading: shading,
	})
	f.Load()
	defer f.Stop()

	if angles {
		if err := writeAngles(os.Stdout, f, at); err != nil {
			return fmt.Errorf("write angles: %w", err)
		}
	}

	if snapshotPath != "" {
		r := canvas.NewRaster(size.X, size.Y, colour)
		f.Render(r)
		if err := writePNG(snapshotPath, r.Image()); err != nil {
			return err
		}
		if snapshotPath != "-" {
			logger.Info("Wrote %dx%d snapshot for %s to %s", size.X, size.Y, at.Format(time.RFC3339), snapshotPath)
		}
	}
	return nil
}

func writeAngles(w io.Writer, f *face.Face, at time.Time) error {
	world := f.World()
	precise := astro.EpochDayOf(at)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "BODY\tANGLE\tSIN\tCOS\tMEAN\t\n")
	for _, row := range world.Snapshot() {
		mean := "-"
		if row.Name != world.LuckyStar.Name {
			mean = strconv.FormatFloat(meanFor(row.Name, precise), 'f', 3, 64)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t\n", row.Name, row.Angle, row.Sin, row.Cos, mean)
	}
	fmt.Fprintf(tw, "\n")
	fmt.Fprintf(tw, "epoch day\t%d\t\t\t%.4f\t\n", world.EpochDay, precise)
	return tw.Flush()
}

// meanFor returns the unrounded face angle of the named body.
func meanFor(name string, day float64) float64 {
	planets := astro.Planets()
	for _, b := range append(planets[:], astro.Moon()) {
		if b.Name == name {
			return astro.MeanAngle(b, day)
		}
	}
	return 0
}

func writePNG(path string, img image.Image) error {
	if path == "-" {
		if err := png.Encode(os.Stdout, img); err != nil {
			return fmt.Errorf("write PNG to stdout: %w", err)
		}
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("write PNG to file: %w", err)
	}
	return nil
}

// parseSize parses WxH and clamps each side to the supported range.
func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("expected WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return image.Point{}, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return image.Point{}, fmt.Errorf("height: %w", err)
	}
	return image.Pt(clamp(w), clamp(h)), nil
}

func clamp(v int) int {
	return min(max(v, minSide), maxSide)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
