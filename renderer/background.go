package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/betaviz/config"
)

// Background renders a faint animated simplex-noise shimmer inside the arena,
// sampled on a coarse grid so it stays cheap on the CPU.
type Background struct {
	noise    opensimplex.Noise
	cellSize int
	scale    float64
	speed    float64
	alpha    float64
}

// NewBackground creates a background shimmer from config.
func NewBackground(cfg config.BackgroundConfig, seed int64) *Background {
	return &Background{
		noise:    opensimplex.NewNormalized(seed),
		cellSize: cfg.CellSize,
		scale:    cfg.NoiseScale,
		speed:    cfg.TimeSpeed,
		alpha:    float64(cfg.Alpha),
	}
}

// Draw fills the rectangle with shimmer cells. time drives the animation.
func (b *Background) Draw(x, y, w, h int32, time float32) {
	if b.cellSize <= 0 || b.alpha <= 0 {
		return
	}

	cell := int32(b.cellSize)
	t := float64(time) * b.speed

	for cy := y; cy < y+h; cy += cell {
		for cx := x; cx < x+w; cx += cell {
			v := b.noise.Eval3(float64(cx)*b.scale, float64(cy)*b.scale, t)
			col := rl.Color{R: 90, G: 110, B: 150, A: uint8(v * b.alpha)}

			cw, ch := cell, cell
			if cx+cw > x+w {
				cw = x + w - cx
			}
			if cy+ch > y+h {
				ch = y + h - cy
			}
			rl.DrawRectangle(cx, cy, cw, ch, col)
		}
	}
}
