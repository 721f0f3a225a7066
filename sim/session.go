package sim

import (
	"math/rand"

	"github.com/pthm-cable/betaviz/config"
	"github.com/pthm-cable/betaviz/decay"
	"github.com/pthm-cable/betaviz/vec"
)

// singleStepDT is the fixed nominal step substituted for one frame when
// stepping while paused, so stepping is frame-rate independent.
const singleStepDT = 1.0 / 60.0

// SpawnFunc observes every freshly generated event, with the mode and bias it
// was generated under. Used for telemetry and logging.
type SpawnFunc func(ev *decay.Event, mode decay.Mode, bias float32)

// Session is the explicit simulation state: the single live event, the
// teaching mode, pause flags, and the bias control. It is created at program
// start, mutated only by the frame loop that owns it, and replaced events are
// swapped in whole so readers never see a partially updated pair.
type Session struct {
	cfg   *config.Config
	gen   *decay.Generator
	arena Arena

	mode     decay.Mode
	paused   bool
	stepOnce bool
	showHelp bool
	bias     float32

	simTime  float32
	eventSeq int64
	current  *decay.Event

	onSpawn SpawnFunc
}

// New creates a session from configuration and a seeded random source, and
// generates the initial event.
func New(cfg *config.Config, rng *rand.Rand) *Session {
	params := decay.Params{
		Origin: vec.Vec2{
			X: cfg.Derived.OriginX32,
			Y: cfg.Derived.OriginY32,
		},
		Speed:          float32(cfg.Decay.Speed),
		AngleSpread:    float32(cfg.Decay.AngleSpread),
		Duration:       float32(cfg.Decay.Duration),
		ElectronRadius: float32(cfg.Decay.ElectronRadius),
		AntinuRadius:   float32(cfg.Decay.AntinuRadius),
		TrailCap:       cfg.Trail.MaxPoints,
	}

	s := &Session{
		cfg: cfg,
		gen: decay.NewGenerator(rng, params),
		arena: Arena{
			X: float32(cfg.Arena.X),
			Y: float32(cfg.Arena.Y),
			W: float32(cfg.Arena.Width),
			H: float32(cfg.Arena.Height),
		},
		mode:     decay.ModeSpinOnly,
		showHelp: true,
		bias:     float32(cfg.Decay.BiasDefault),
	}
	s.regenerate()
	return s
}

// SetSpawnHook registers fn to be called for every generated event, including
// replacements already triggered. Passing nil removes the hook.
func (s *Session) SetSpawnHook(fn SpawnFunc) {
	s.onSpawn = fn
	if fn != nil && s.current != nil {
		fn(s.current, s.mode, s.bias)
	}
}

// regenerate atomically replaces the live event with a fresh sample using the
// current bias and mode.
func (s *Session) regenerate() {
	s.current = s.gen.Generate(s.bias, s.mode)
	s.eventSeq++
	if s.onSpawn != nil {
		s.onSpawn(s.current, s.mode, s.bias)
	}
}

// SelectMode switches the teaching mode and starts a fresh event. The event's
// derived quantities depend on the mode, so a stale sample is never reused.
func (s *Session) SelectMode(m decay.Mode) {
	if !m.Valid() {
		return
	}
	s.mode = m
	s.regenerate()
}

// NewDecay discards the live event and generates another with the current
// mode and bias.
func (s *Session) NewDecay() {
	s.regenerate()
}

// RaiseBias increases the left-handed bias by one step and regenerates.
func (s *Session) RaiseBias() {
	s.setBias(s.bias + float32(s.cfg.Decay.BiasStep))
}

// LowerBias decreases the left-handed bias by one step and regenerates.
func (s *Session) LowerBias() {
	s.setBias(s.bias - float32(s.cfg.Decay.BiasStep))
}

// SetBias sets the left-handed bias directly (slider input), clamped to the
// configured range. A fresh event is generated only when the value changes.
func (s *Session) SetBias(v float32) {
	s.setBias(v)
}

func (s *Session) setBias(v float32) {
	lo := float32(s.cfg.Decay.BiasMin)
	hi := float32(s.cfg.Decay.BiasMax)
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	if v == s.bias {
		return
	}
	s.bias = v
	s.regenerate()
}

// TogglePause flips the paused flag. Pausing does not touch the live event.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// RequestStep arms a one-frame advance. Only honored while paused.
func (s *Session) RequestStep() {
	if s.paused {
		s.stepOnce = true
	}
}

// ToggleHelp flips the help panel flag. Presentation only.
func (s *Session) ToggleHelp() {
	s.showHelp = !s.showHelp
}

// Advance applies pause/step logic to the real elapsed time and advances the
// live event: lifetime accounting with automatic respawn on expiry, then one
// step for each particle. Returns the effective simulation dt.
func (s *Session) Advance(dtReal float32) float32 {
	dt := dtReal
	if s.paused {
		dt = 0
		if s.stepOnce {
			dt = singleStepDT
			s.stepOnce = false
		}
	}

	s.simTime += dt

	if dt > 0 {
		s.current.TimeAlive += dt
		if s.current.Expired() {
			s.regenerate()
		}
	}

	StepParticle(&s.current.Electron, dt, s.arena)
	StepParticle(&s.current.Antinu, dt, s.arena)

	return dt
}

// Current returns the live event. Callers must not hold the pointer across
// Advance or command calls.
func (s *Session) Current() *decay.Event { return s.current }

// Mode returns the active teaching mode.
func (s *Session) Mode() decay.Mode { return s.mode }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// ShowHelp reports whether the help panel should be drawn.
func (s *Session) ShowHelp() bool { return s.showHelp }

// Bias returns the current left-handed bias.
func (s *Session) Bias() float32 { return s.bias }

// SimTime returns accumulated simulated seconds, excluding paused time.
func (s *Session) SimTime() float32 { return s.simTime }

// EventSeq returns the number of events generated so far.
func (s *Session) EventSeq() int64 { return s.eventSeq }

// Arena returns the bounce box.
func (s *Session) Arena() Arena { return s.arena }

// Origin returns the decay origin point.
func (s *Session) Origin() vec.Vec2 { return s.gen.Params().Origin }

// Readout recomputes the derived display quantities from current particle
// state. Pure and uncached.
func (s *Session) Readout() decay.Readout {
	return decay.Evaluate(s.current)
}
