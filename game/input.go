package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/betaviz/decay"
)

// handleInput maps keys to session commands. Commands apply on the frame
// they are pressed, before the simulation advances.
func (g *Game) handleInput() {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		g.session.SelectMode(decay.ModeSpinOnly)
	case rl.IsKeyPressed(rl.KeyTwo):
		g.session.SelectMode(decay.ModeSpinAndMotion)
	case rl.IsKeyPressed(rl.KeyThree):
		g.session.SelectMode(decay.ModeFullConservation)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.session.NewDecay()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		g.session.RaiseBias()
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		g.session.LowerBias()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.session.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyN) {
		g.session.RequestStep()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		g.session.ToggleHelp()
	}
}
