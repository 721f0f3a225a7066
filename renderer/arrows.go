package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/vec"
)

// Default arrowhead size in pixels.
const arrowHead = 10.0

func rlVec(v vec.Vec2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

// DrawArrow draws a line arrow of the given length along dirUnit, with an
// open two-line head.
func DrawArrow(from, dirUnit vec.Vec2, length float32, col rl.Color) {
	to := from.Add(dirUnit.Scale(length))
	rl.DrawLineV(rlVec(from), rlVec(to), col)

	p := dirUnit.Perp()
	h1 := to.Sub(dirUnit.Scale(arrowHead)).Add(p.Scale(arrowHead * 0.55))
	h2 := to.Sub(dirUnit.Scale(arrowHead)).Sub(p.Scale(arrowHead * 0.55))
	rl.DrawLineV(rlVec(to), rlVec(h1), col)
	rl.DrawLineV(rlVec(to), rlVec(h2), col)
}
