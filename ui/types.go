// Package ui renders the HUD panels, tooltips, and on-screen controls around
// the simulation scene.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the shared panel and text styling.
type Theme struct {
	PanelBg      rl.Color
	PanelBorder  rl.Color
	TitleColor   rl.Color
	TextColor    rl.Color
	DimColor     rl.Color
	AccentColor  rl.Color
	WarnColor    rl.Color
	FontSize     int32
	TitleSize    int32
	LineHeight   int32
	PanelPadding int32
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:      rl.Color{R: 10, G: 12, B: 16, A: 200},
		PanelBorder:  rl.Color{R: 80, G: 90, B: 110, A: 180},
		TitleColor:   rl.Color{R: 240, G: 240, B: 240, A: 255},
		TextColor:    rl.Color{R: 230, G: 230, B: 230, A: 255},
		DimColor:     rl.Color{R: 170, G: 175, B: 185, A: 255},
		AccentColor:  rl.Color{R: 120, G: 220, B: 140, A: 255},
		WarnColor:    rl.Color{R: 230, G: 120, B: 120, A: 255},
		FontSize:     16,
		TitleSize:    18,
		LineHeight:   20,
		PanelPadding: 10,
	}
}
