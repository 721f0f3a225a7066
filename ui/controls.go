package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// BiasSlider is an on-screen alternative to the Up/Down keys for the
// left-handed bias control.
type BiasSlider struct {
	bounds rl.Rectangle
}

// NewBiasSlider creates a slider anchored at the bottom-right of the arena.
func NewBiasSlider(arenaX, arenaY, arenaW, arenaH float32) *BiasSlider {
	return &BiasSlider{
		bounds: rl.Rectangle{
			X:      arenaX + arenaW - 220,
			Y:      arenaY + arenaH + 14,
			Width:  180,
			Height: 16,
		},
	}
}

// Draw renders the slider and returns the (possibly dragged) bias value.
func (b *BiasSlider) Draw(bias, min, max float32) float32 {
	label := fmt.Sprintf("left-hand bias %.2f", bias)
	return gui.SliderBar(b.bounds, label, "", bias, min, max)
}
