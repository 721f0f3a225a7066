package decay

import "github.com/pthm-cable/betaviz/vec"

// ClaimDeadband is the spin-dot threshold below which the tested claim "the
// neutrino spins opposite the electron" looks true on screen. The margin
// keeps near-orthogonal spins from being flagged as opposite. Display tuning
// only; it encodes no physics.
const ClaimDeadband = -0.2

// Sign returns +1 for x >= 0 and -1 otherwise.
func Sign(x float32) int {
	if x >= 0 {
		return +1
	}
	return -1
}

// HelicitySign returns the sign of the projection of spin onto momentum:
// +1 right-handed, -1 left-handed. Inputs are normalized before the dot
// product; a zero-velocity particle evaluates as +1 by the sign convention.
func HelicitySign(spinDir, momDir vec.Vec2) int {
	return Sign(spinDir.Norm().Dot(momDir.Norm()))
}

// Readout bundles the derived quantities the display reads every frame. It is
// recomputed from particle state on demand and never feeds back into the
// simulation.
type Readout struct {
	SpinDot          float32 // dot of the two unit spin directions
	ClaimLooksTrue   bool    // spins render as "opposite" within the deadband
	ElectronHelicity int
	AntinuHelicity   int
}

// Evaluate computes the readout for the current state of ev.
func Evaluate(ev *Event) Readout {
	spinDot := ev.Electron.SpinDir.Norm().Dot(ev.Antinu.SpinDir.Norm())
	return Readout{
		SpinDot:          spinDot,
		ClaimLooksTrue:   spinDot < ClaimDeadband,
		ElectronHelicity: HelicitySign(ev.Electron.SpinDir, ev.Electron.Vel),
		AntinuHelicity:   HelicitySign(ev.Antinu.SpinDir, ev.Antinu.Vel),
	}
}
