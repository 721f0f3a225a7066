package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/betaviz/decay"
	"github.com/pthm-cable/betaviz/vec"
)

func TestNewEventRecord(t *testing.T) {
	// Right-handed electron, right-handed anti-neutrino: spins point opposite
	// ways in space, so the claim looks true.
	ev := &decay.Event{
		Electron: decay.Particle{
			SpinDir: vec.Vec2{X: 1},
			Vel:     vec.Vec2{X: 260},
		},
		Antinu: decay.Particle{
			SpinDir: vec.Vec2{X: -1},
			Vel:     vec.Vec2{X: -260},
		},
		ProtonSpinSign:  -1,
		NeutronSpinSign: +1,
		OrbitalL:        2,
	}

	rec := NewEventRecord(ev, decay.ModeFullConservation, 0.85, 7, 12.5)

	if rec.Seq != 7 {
		t.Errorf("Seq = %d, want 7", rec.Seq)
	}
	if rec.Mode != "full_conservation" {
		t.Errorf("Mode = %q, want full_conservation", rec.Mode)
	}
	if math.Abs(rec.Bias-0.85) > 1e-6 {
		t.Errorf("Bias = %v, want 0.85", rec.Bias)
	}
	if rec.ProtonSpinSign != -1 || rec.OrbitalL != 2 {
		t.Errorf("spin bookkeeping = %d / %d, want -1 / 2", rec.ProtonSpinSign, rec.OrbitalL)
	}
	if rec.ElectronHelicity != +1 || rec.AntinuHelicity != +1 {
		t.Errorf("helicities = %d / %d, want +1 / +1", rec.ElectronHelicity, rec.AntinuHelicity)
	}
	if !rec.ClaimTrue {
		t.Error("exactly opposite spins should satisfy the claim")
	}
	if math.Abs(rec.SpinDot-(-1)) > 1e-5 {
		t.Errorf("SpinDot = %v, want -1", rec.SpinDot)
	}
}
