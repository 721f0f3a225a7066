package ui

import (
	"fmt"

	"github.com/pthm-cable/betaviz/decay"
)

// HUDData holds everything the HUD panels display for one frame.
type HUDData struct {
	Mode    decay.Mode
	Paused  bool
	Help    bool
	Bias    float32
	Readout decay.Readout

	ProtonSpinSign int
	OrbitalL       int

	// Arena rectangle in window coordinates; panels are laid out inside it.
	ArenaX, ArenaY, ArenaW, ArenaH int32
}

// HUD renders the teaching panels.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the top teaching panel and, when help is on, the bottom
// numeric readout panel.
func (h *HUD) Draw(data HUDData) {
	h.drawTopPanel(data)
	if data.Help {
		h.drawReadoutPanel(data)
	}
}

func (h *HUD) drawTopPanel(data HUDData) {
	r := h.renderer
	pad := r.Theme.PanelPadding

	px := data.ArenaX + 10
	py := data.ArenaY + 10
	pw := data.ArenaW - 20
	ph := int32(140)
	r.DrawPanel(px, py, pw, ph)

	x := px + pad
	y := py + pad - 2

	title := data.Mode.Title()
	if data.Paused {
		title += "   [PAUSED]"
	}
	y = r.DrawTitle(x, y, title)
	y = r.DrawLine(x, y, "Keys: 1 2 3 modes   Space new decay   Up Down bias   P pause   N step   H help", r.Theme.DimColor)

	y = r.DrawLine(x, y, `Claim being tested: "the neutrino spins opposite the electron"`, r.Theme.TextColor)

	switch data.Mode {
	case decay.ModeSpinOnly:
		y = r.DrawLine(x, y, "Result: ALWAYS looks true here (by construction). This mode is the oversimplified story.", r.Theme.AccentColor)
		r.DrawLine(x, y, "What you are seeing: ONLY spin arrows. Motion is hidden, so the shortcut seems valid.", r.Theme.DimColor)
	case decay.ModeSpinAndMotion:
		y = h.drawClaimResult(x, y, data)
		r.DrawLine(x, y, "What you are seeing: momentum (gray) and spin (white). Helicity depends on BOTH.", r.Theme.DimColor)
	case decay.ModeFullConservation:
		y = h.drawClaimResult(x, y, data)
		r.DrawLine(x, y, "What you are seeing: when spins do not balance, the swirl shows extra angular momentum from motion.", r.Theme.DimColor)
	}
}

func (h *HUD) drawClaimResult(x, y int32, data HUDData) int32 {
	r := h.renderer
	verdict := "does NOT look true"
	col := r.Theme.WarnColor
	if data.Readout.ClaimLooksTrue {
		verdict = "looks true"
		col = r.Theme.AccentColor
	}
	line := fmt.Sprintf("Result in this frame: %s (spin dot = %.2f)", verdict, data.Readout.SpinDot)
	return r.DrawLine(x, y, line, col)
}

func (h *HUD) drawReadoutPanel(data HUDData) {
	r := h.renderer
	pad := r.Theme.PanelPadding

	px := data.ArenaX + 10
	ph := int32(110)
	py := data.ArenaY + data.ArenaH - ph - 10
	pw := data.ArenaW - 20
	r.DrawPanel(px, py, pw, ph)

	x := px + pad
	y := py + pad - 2

	signStr := "+1"
	if data.ProtonSpinSign < 0 {
		signStr = "-1"
	}
	y = r.DrawLine(x, y, fmt.Sprintf("left bias: %.2f   proton spin sign: %s", data.Bias, signStr), r.Theme.TextColor)

	if data.Mode == decay.ModeSpinOnly {
		y = r.DrawLine(x, y, "Mode 1 note: this forces opposite spins, so it cannot teach helicity or why the shortcut fails.", r.Theme.DimColor)
	} else {
		y = r.DrawLine(x, y, fmt.Sprintf("electron helicity: %+d   anti nu helicity: %+d",
			data.Readout.ElectronHelicity, data.Readout.AntinuHelicity), r.Theme.TextColor)
		y = r.DrawLine(x, y, "Helicity = sign(spin dot momentum). Flip motion and helicity can change.", r.Theme.DimColor)
	}

	if data.Mode == decay.ModeFullConservation {
		if data.OrbitalL == 0 {
			r.DrawLine(x, y, "Conservation: spins alone balance (L_needed = 0).", r.Theme.AccentColor)
		} else {
			r.DrawLine(x, y, fmt.Sprintf("Conservation: spins do NOT balance. Extra angular momentum must come from motion (L_needed = %d).", data.OrbitalL), r.Theme.WarnColor)
		}
	} else {
		r.DrawLine(x, y, "Tip: switch to Mode 3 to see why spin-only balancing is not generally sufficient.", r.Theme.DimColor)
	}
}
