// Package game wires the simulation session to raylib: input polling, frame
// advancement, scene drawing, and telemetry hooks.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/config"
	"github.com/pthm-cable/betaviz/renderer"
	"github.com/pthm-cable/betaviz/sim"
	"github.com/pthm-cable/betaviz/telemetry"
	"github.com/pthm-cable/betaviz/ui"
)

// headlessDT is the fixed step used when running without a display.
const headlessDT = 1.0 / 60.0

// Options holds game initialization settings.
type Options struct {
	Seed      int64
	LogEvents bool   // slog every generated event
	OutputDir string // CSV output directory ("" = disabled)
	Headless  bool   // skip all rendering state
}

// Game owns the session and everything around it for one run.
type Game struct {
	cfg     *config.Config
	session *sim.Session

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logEvents bool

	// Rendering state, nil in headless mode
	background *renderer.Background
	hud        *ui.HUD
	uiRenderer *ui.Renderer
	biasSlider *ui.BiasSlider

	hoverTip  *ui.Tooltip
	arrowSegs []arrowSeg
}

// NewGameWithOptions creates a game instance. The random source is seeded
// once here and owned by the session's generator from then on.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		cfg:       cfg,
		session:   sim.New(cfg, rand.New(rand.NewSource(opts.Seed))),
		collector: telemetry.NewCollector(cfg.Telemetry.WindowEvents),
		logEvents: opts.LogEvents,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
	} else if om != nil {
		g.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.background = renderer.NewBackground(cfg.Background, opts.Seed)
		g.hud = ui.NewHUD()
		g.uiRenderer = ui.NewRenderer()
		a := g.session.Arena()
		g.biasSlider = ui.NewBiasSlider(a.X, a.Y, a.W, a.H)
	}

	g.hookTelemetry()

	return g
}

// Update runs one frame: input, then simulation advance with the real frame
// time. Pause and single-step handling live in the session.
func (g *Game) Update() {
	g.handleInput()
	g.session.Advance(rl.GetFrameTime())
}

// UpdateHeadless advances the simulation one fixed step without any raylib
// calls.
func (g *Game) UpdateHeadless() {
	g.session.Advance(headlessDT)
}

// EventCount returns the number of decay events generated so far.
func (g *Game) EventCount() int64 {
	return g.session.EventSeq()
}

// Unload flushes telemetry and releases resources.
func (g *Game) Unload() {
	if stats, ok := g.collector.FlushWindow(); ok {
		stats.Log()
		if err := g.output.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
