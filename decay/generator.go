package decay

import (
	"math/rand"

	"github.com/pthm-cable/betaviz/vec"
)

// Params holds the fixed quantities a Generator stamps onto every event.
type Params struct {
	Origin         vec.Vec2 // shared spawn point for both particles
	Speed          float32  // |velocity| for both particles
	AngleSpread    float32  // electron emission angle drawn from [-spread, +spread]
	Duration       float32  // event lifetime in seconds
	ElectronRadius float32
	AntinuRadius   float32
	TrailCap       int // bounded trail capacity per particle
}

// Generator produces decay events from an injected random source. The source
// is owned by the generator so tests can seed it deterministically.
type Generator struct {
	rng    *rand.Rand
	params Params
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(rng *rand.Rand, params Params) *Generator {
	return &Generator{rng: rng, params: params}
}

// Generate samples a fresh decay event. bias is the probability of a
// left-handed electron (spin opposite momentum) and is expected pre-clamped
// to an open interval inside (0, 1). Generation always succeeds.
func (g *Generator) Generate(bias float32, mode Mode) *Event {
	p := g.params

	ev := &Event{
		NeutronSpinSign: +1,
		Duration:        p.Duration,
	}

	// Mostly rightward electron momentum; anti-neutrino exactly back-to-back.
	// No recoil asymmetry in this toy.
	a := (g.rng.Float32()*2 - 1) * p.AngleSpread
	dirE := vec.FromAngle(a)
	dirNu := dirE.Neg()

	// Electron spin: left-handed with probability bias, right-handed otherwise.
	spinE := dirE
	if g.rng.Float32() < bias {
		spinE = dirE.Neg()
	}

	// Anti-neutrino spin always aligned with its own momentum (right-handed
	// convention, meaningful in modes 2 and 3).
	spinNu := dirNu

	ev.Electron = Particle{
		Name:    "e-",
		Kind:    KindElectron,
		Pos:     p.Origin,
		Vel:     dirE.Scale(p.Speed),
		SpinDir: spinE,
		Radius:  p.ElectronRadius,
		Trail:   NewTrail(p.TrailCap),
	}
	ev.Antinu = Particle{
		Name:    "anti-nu",
		Kind:    KindAntineutrino,
		Pos:     p.Origin,
		Vel:     dirNu.Scale(p.Speed),
		SpinDir: spinNu,
		Radius:  p.AntinuRadius,
		Trail:   NewTrail(p.TrailCap),
	}

	ev.ProtonSpinSign = +1
	if g.rng.Intn(2) == 0 {
		ev.ProtonSpinSign = -1
	}

	// Mode 1 enforces the oversimplified story visually: spins always appear
	// exactly opposite, hiding the relationship between helicity and motion.
	// A deliberate teaching simplification, not a physical derivation.
	if mode == ModeSpinOnly {
		ev.Antinu.SpinDir = ev.Electron.SpinDir.Neg().Norm()
	}

	// Toy integer bookkeeping: how much angular momentum the spins leave
	// unaccounted for. Fixed for the life of the event.
	sP := ev.ProtonSpinSign
	sE := Sign(ev.Electron.SpinDir.Y)
	sN := Sign(ev.Antinu.SpinDir.Y)
	ev.OrbitalL = ev.NeutronSpinSign - (sP + sE + sN)

	return ev
}

// Params returns the generator's fixed event parameters.
func (g *Generator) Params() Params {
	return g.params
}
