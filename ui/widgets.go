package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawTitle draws a heading line and returns the next Y position.
func (r *Renderer) DrawTitle(x, y int32, text string) int32 {
	rl.DrawText(text, x, y, r.Theme.TitleSize, r.Theme.TitleColor)
	return y + r.Theme.LineHeight + 2
}

// DrawLine draws a text line and returns the next Y position.
func (r *Renderer) DrawLine(x, y int32, text string, col rl.Color) int32 {
	rl.DrawText(text, x, y, r.Theme.FontSize, col)
	return y + r.Theme.LineHeight
}

// DrawCenteredLabel draws small outlined-ish text centered on a point, used
// for in-scene labels above particles.
func (r *Renderer) DrawCenteredLabel(x, y float32, text string) {
	const size = 14
	w := rl.MeasureText(text, size)
	// Cheap outline: dark text offset one pixel in each direction.
	shadow := rl.Color{R: 0, G: 0, B: 0, A: 180}
	for _, off := range [][2]int32{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		rl.DrawText(text, int32(x)-w/2+off[0], int32(y)-size/2+off[1], size, shadow)
	}
	rl.DrawText(text, int32(x)-w/2, int32(y)-size/2, size, rl.Color{R: 245, G: 245, B: 245, A: 220})
}
