package decay

import (
	"testing"

	"github.com/pthm-cable/betaviz/vec"
)

func TestSign(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want int
	}{
		{"positive", 3.2, +1},
		{"negative", -0.001, -1},
		{"zero is positive by convention", 0, +1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sign(tt.x); got != tt.want {
				t.Errorf("Sign(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestHelicitySign(t *testing.T) {
	right := vec.Vec2{X: 1, Y: 0}
	left := vec.Vec2{X: -1, Y: 0}

	if got := HelicitySign(right, right); got != +1 {
		t.Errorf("aligned helicity = %d, want +1", got)
	}
	if got := HelicitySign(left, right); got != -1 {
		t.Errorf("anti-aligned helicity = %d, want -1", got)
	}

	// Zero momentum evaluates as +1 by the sign convention.
	if got := HelicitySign(right, vec.Vec2{}); got != +1 {
		t.Errorf("zero-momentum helicity = %d, want +1", got)
	}
}

func TestHelicitySignDoubleNegation(t *testing.T) {
	// sign(dot) is invariant under simultaneous negation of both operands.
	dirs := []vec.Vec2{
		{X: 1, Y: 0},
		{X: 0.6, Y: 0.8},
		{X: -0.707, Y: 0.707},
		{X: 0, Y: -1},
	}
	for _, s := range dirs {
		for _, m := range dirs {
			a := HelicitySign(s, m)
			b := HelicitySign(s.Neg(), m.Neg())
			if a != b {
				t.Errorf("HelicitySign(%v, %v) = %d but negated = %d", s, m, a, b)
			}
			if a != +1 && a != -1 {
				t.Errorf("HelicitySign(%v, %v) = %d, want +-1", s, m, a)
			}
		}
	}
}

func TestEvaluateClaimDeadband(t *testing.T) {
	mkEvent := func(spinE, spinNu vec.Vec2) *Event {
		return &Event{
			Electron: Particle{SpinDir: spinE, Vel: vec.Vec2{X: 260}},
			Antinu:   Particle{SpinDir: spinNu, Vel: vec.Vec2{X: -260}},
		}
	}

	tests := []struct {
		name   string
		spinE  vec.Vec2
		spinNu vec.Vec2
		want   bool
	}{
		{"exactly opposite", vec.Vec2{X: 1}, vec.Vec2{X: -1}, true},
		{"aligned", vec.Vec2{X: 1}, vec.Vec2{X: 1}, false},
		{"orthogonal stays inside deadband", vec.Vec2{X: 1}, vec.Vec2{Y: 1}, false},
		{"slightly opposed, within deadband", vec.Vec2{X: 1}, vec.Vec2{X: -0.1, Y: 0.995}.Norm(), false},
		{"clearly opposed", vec.Vec2{X: 1}, vec.Vec2{X: -0.5, Y: 0.866}.Norm(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(mkEvent(tt.spinE, tt.spinNu))
			if r.ClaimLooksTrue != tt.want {
				t.Errorf("ClaimLooksTrue = %v (spin dot %v), want %v", r.ClaimLooksTrue, r.SpinDot, tt.want)
			}
		})
	}
}

func TestEvaluateHelicities(t *testing.T) {
	// Left-handed electron, right-handed anti-neutrino: the usual toy setup.
	// Both spin vectors point the same way in space, so the spins-opposite
	// claim fails even though the helicities are opposite. That mismatch is
	// the misconception this tool exists to show.
	ev := &Event{
		Electron: Particle{SpinDir: vec.Vec2{X: -1}, Vel: vec.Vec2{X: 260}},
		Antinu:   Particle{SpinDir: vec.Vec2{X: -1}, Vel: vec.Vec2{X: -260}},
	}
	r := Evaluate(ev)

	if r.ElectronHelicity != -1 {
		t.Errorf("electron helicity = %d, want -1", r.ElectronHelicity)
	}
	if r.AntinuHelicity != +1 {
		t.Errorf("antinu helicity = %d, want +1", r.AntinuHelicity)
	}
	if r.ClaimLooksTrue {
		t.Error("spatially aligned spins should not satisfy the claim")
	}
	if d := r.SpinDot - 1; d > 1e-5 || d < -1e-5 {
		t.Errorf("spin dot = %v, want +1", r.SpinDot)
	}
}

func TestOrbitalArithmetic(t *testing.T) {
	// Proton -1, neutron +1, electron spin up (+1), antinu spin down (-1):
	// L = 1 - (-1 + 1 - 1) = 2.
	ev := &Event{
		NeutronSpinSign: +1,
		ProtonSpinSign:  -1,
		Electron:        Particle{SpinDir: vec.Vec2{Y: 1}},
		Antinu:          Particle{SpinDir: vec.Vec2{Y: -1}},
	}
	sP := ev.ProtonSpinSign
	sE := Sign(ev.Electron.SpinDir.Y)
	sN := Sign(ev.Antinu.SpinDir.Y)
	got := ev.NeutronSpinSign - (sP + sE + sN)

	if got != 2 {
		t.Errorf("orbital remainder = %d, want 2", got)
	}
}
