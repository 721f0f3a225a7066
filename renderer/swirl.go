package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/vec"
)

// Swirl geometry. The hover band tolerance lives with the ring radius so the
// hit-test and the drawing stay in sync.
const (
	SwirlBaseRadius = 22.0
	SwirlRadiusPerL = 10.0
	SwirlHoverBand  = 14.0
	swirlPoints     = 140
	swirlWobble     = 5.0
	swirlSpinRate   = 2.2
)

// SwirlRadius returns the nominal ring radius for an orbital magnitude.
func SwirlRadius(orbitalL int) float32 {
	mag := orbitalL
	if mag < 0 {
		mag = -mag
	}
	return SwirlBaseRadius + float32(mag)*SwirlRadiusPerL
}

// DrawOrbitalSwirl draws the animated spiral standing in for the angular
// momentum that spins alone fail to account for. Nothing is drawn when
// spins already balance. The swirl rotates with the sign of the remainder.
func DrawOrbitalSwirl(center vec.Vec2, orbitalL int, time float32) {
	mag := orbitalL
	if mag < 0 {
		mag = -mag
	}
	if mag == 0 {
		return
	}

	r := SwirlRadius(orbitalL)
	turns := 2.0 + 0.5*float32(mag)
	phase := time * swirlSpinRate
	if orbitalL < 0 {
		phase = -phase
	}

	col := rl.Color{R: 230, G: 120, B: 120, A: uint8(40 + mag*20)}

	var prev rl.Vector2
	for i := 0; i <= swirlPoints; i++ {
		a := float32(i)/swirlPoints*2*math.Pi*turns + phase
		rr := r + float32(math.Sin(float64(a*1.2)))*swirlWobble
		pt := rl.Vector2{
			X: center.X + float32(math.Cos(float64(a)))*rr,
			Y: center.Y + float32(math.Sin(float64(a)))*rr,
		}
		if i > 0 {
			rl.DrawLineV(prev, pt, col)
		}
		prev = pt
	}
}
