// Package renderer provides the drawing primitives for the visualization:
// glow circles, vector arrows, fading trails, the orbital swirl, and the
// arena background shimmer.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/decay"
)

// Scene palette.
var (
	ColorWindowBg    = rl.Color{R: 12, G: 14, B: 18, A: 255}
	ColorArenaBg     = rl.Color{R: 16, G: 18, B: 24, A: 255}
	ColorArenaBorder = rl.Color{R: 70, G: 80, B: 95, A: 255}

	ColorNeutron  = rl.Color{R: 160, G: 210, B: 255, A: 255}
	ColorProton   = rl.Color{R: 255, G: 120, B: 150, A: 255}
	ColorElectron = rl.Color{R: 240, G: 210, B: 80, A: 255}
	ColorAntinu   = rl.Color{R: 120, G: 190, B: 255, A: 255}

	ColorMomentumArrow = rl.Color{R: 150, G: 150, B: 150, A: 220}
	ColorSpinArrow     = rl.Color{R: 235, G: 235, B: 235, A: 220}
)

// ParticleColor maps a decay product to its display color.
func ParticleColor(kind decay.Kind) rl.Color {
	if kind == decay.KindElectron {
		return ColorElectron
	}
	return ColorAntinu
}
