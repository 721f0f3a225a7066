package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/decay"
)

// DrawTrail draws a particle's trail as a fading line strip, oldest samples
// most transparent.
func DrawTrail(p *decay.Particle) {
	n := p.Trail.Len()
	if n < 2 {
		return
	}

	col := ParticleColor(p.Kind)
	for i := 0; i < n-1; i++ {
		t := float32(i) / float32(n-1)
		seg := col
		seg.A = uint8(40 + 140*t)
		rl.DrawLineV(rlVec(p.Trail.At(i)), rlVec(p.Trail.At(i+1)), seg)
	}
}
