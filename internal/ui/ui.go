// Package ui hosts the clock face in the terminal using Bubble Tea.
package ui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/planetarium/internal/anim"
	"github.com/litescript/planetarium/internal/canvas"
	"github.com/litescript/planetarium/internal/config"
	"github.com/litescript/planetarium/internal/face"
	"github.com/litescript/planetarium/internal/logging"
	"github.com/litescript/planetarium/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg is the minute tick.
	TickMsg time.Time

	// FireMsg carries an animation timer token into the event loop.
	FireMsg anim.Token

	// ConfigMsg is an inbound configuration message.
	ConfigMsg config.Message
)

// chromeRows is the number of terminal rows used around the face.
const chromeRows = 3

var toggleKeys = map[string]config.Key{
	"i": config.KeyInverted,
	"a": config.KeyAnimate,
	"s": config.KeyStars,
	"v": config.KeyVibrate,
	"o": config.KeyAsteroids,
	"r": config.KeyInfinite,
}

// Model is the root Bubble Tea model.
type Model struct {
	face   *face.Face
	fires  <-chan anim.Token
	log    *logging.Logger
	raster *canvas.Raster

	width     int
	height    int
	ready     bool
	frame     string
	statusMsg string
}

// New creates the root model. fires must receive the tokens the face's
// scheduler dispatches.
func New(f *face.Face, fires <-chan anim.Token, size image.Point, colour bool, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		face:   f,
		fires:  fires,
		log:    log,
		raster: canvas.NewRaster(size.X, size.Y, colour),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(minuteTickCmd(), waitForFire(m.fires))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.face.Stop()
			return m, tea.Quit
		default:
			if key, ok := toggleKeys[msg.String()]; ok {
				m.applyMessage(config.Toggle(m.face.Config(), key))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.redraw()

	case TickMsg:
		cmds = append(cmds, minuteTickCmd())
		m.face.Tick(time.Time(msg))

	case FireMsg:
		cmds = append(cmds, waitForFire(m.fires))
		m.face.Fire(anim.Token(msg))

	case ConfigMsg:
		m.applyMessage(config.Message(msg))
	}

	if m.ready && m.face.Dirty() {
		m.redraw()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) applyMessage(msg config.Message) {
	if len(msg) == 0 {
		return
	}
	errs := m.face.ApplyMessage(msg)
	if len(errs) > 0 {
		m.statusMsg = errs[0].Error()
		return
	}
	parts := make([]string, 0, len(msg))
	for _, k := range msg.Keys() {
		parts = append(parts, k+"="+msg[k])
	}
	m.statusMsg = strings.Join(parts, " ")
}

// redraw renders the face and caches the terminal frame.
func (m *Model) redraw() {
	m.face.Render(m.raster)
	rows := m.height - chromeRows
	m.frame = RenderHalfBlocks(m.raster.Image(), m.width, rows)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.frame + "\n" + m.renderStatusLine() + "\n" + m.renderFooter()
}

func (m Model) renderStatusLine() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA55")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	status := accent.Render(m.face.Displayed().String())
	if m.face.Animating() {
		if r := m.face.Remaining(); r > 0 {
			status += dim.Render(fmt.Sprintf(" sweeping %.1fs", r.Seconds()))
		} else {
			status += dim.Render(" rotating")
		}
	}
	status += "  " + dim.Render(flagSummary(m.face.Config()))
	if m.statusMsg != "" {
		status += "  " + dim.Render(m.statusMsg)
	}
	return status
}

func (m Model) renderFooter() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return dim.Render(fmt.Sprintf("i: invert | a: animate | s: stars | v: vibrate | o: asteroids | r: rotate | q: quit   v%s", version.Version))
}

// flagSummary lists the enabled settings.
func flagSummary(cfg config.Configuration) string {
	var on []string
	add := func(enabled bool, name string) {
		if enabled {
			on = append(on, name)
		}
	}
	add(cfg.Inverted, "inv")
	add(cfg.Animate, "anim")
	add(cfg.Stars, "stars")
	add(cfg.Vibrate, "vibr")
	add(cfg.Asteroids, "astro")
	add(cfg.InfiniteRotation, "infr")
	if cfg.LuckyStarSet() {
		on = append(on, "date:"+cfg.LuckyDate)
	}
	if len(on) == 0 {
		return "-"
	}
	return strings.Join(on, " ")
}

// minuteTickCmd fires at the start of every wall-clock minute.
func minuteTickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForFire blocks until the scheduler dispatches a token.
func waitForFire(fires <-chan anim.Token) tea.Cmd {
	if fires == nil {
		return nil
	}
	return func() tea.Msg {
		tok, ok := <-fires
		if !ok {
			return nil
		}
		return FireMsg(tok)
	}
}
