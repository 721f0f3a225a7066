package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/vec"
)

// DrawGlowCircle draws a filled circle with a soft layered halo.
func DrawGlowCircle(center vec.Vec2, r float32, c rl.Color) {
	for i := 5; i >= 1; i-- {
		halo := c
		halo.A = uint8(18 * i)
		rl.DrawCircleV(rlVec(center), r+float32(i)*6, halo)
	}
	rl.DrawCircleV(rlVec(center), r, c)
}
