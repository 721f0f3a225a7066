package decay

import "github.com/pthm-cable/betaviz/vec"

// Kind identifies which decay product a particle is. The renderer maps kind
// to color and labels.
type Kind uint8

const (
	KindElectron Kind = iota
	KindAntineutrino
)

// Particle is one moving point of the decay pair. Pos and Vel change every
// step; SpinDir is fixed at creation and only re-normalized afterwards.
type Particle struct {
	Name    string
	Kind    Kind
	Pos     vec.Vec2
	Vel     vec.Vec2 // momentum direction is Vel normalized
	SpinDir vec.Vec2 // unit vector

	Radius float32

	Trail      Trail
	TrailTimer float32 // seconds since the last trail sample
}

// MomentumDir returns the unit momentum direction.
func (p *Particle) MomentumDir() vec.Vec2 {
	return p.Vel.Norm()
}
