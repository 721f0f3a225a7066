package ui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tooltip is the hover explanation for one scene element.
type Tooltip struct {
	Title string
	Body  string
}

// Hover targets, in hit-test priority order.
var (
	TipNeutron = Tooltip{
		Title: "Neutron",
		Body: `This is the neutron before it breaks.

Think of it like:
  - One heavy ball
  - Sitting still
  - About to split

It does nothing else here except exist as the starting point.
It does not move because we are not teaching neutron motion,
only what comes out of it.`,
	}

	TipProton = Tooltip{
		Title: "Proton",
		Body: `This is the proton after the break.

Think:
  - Neutron turns into a proton
  - Proton is heavy
  - So it barely moves

In real life it can move, but we keep it still so it doesn't distract you.
Red means: the heavy leftover.`,
	}

	TipElectron = Tooltip{
		Title: "Electron (e-)",
		Body: `This is the electron.

Think:
  - A tiny piece that shoots out fast
  - Light
  - Easy to move

The yellow glow just helps your eyes track it.`,
	}

	TipAntinu = Tooltip{
		Title: "Anti-neutrino",
		Body: `This is the anti-neutrino.

Think:
  - Even tinier than the electron
  - Almost invisible in real life
  - Flies off very fast

It usually goes roughly the opposite way from the electron.`,
	}

	TipMomentum = Tooltip{
		Title: "Momentum arrow",
		Body: `This arrow means:
"Which way is this thing moving?"`,
	}

	TipSpin = Tooltip{
		Title: "Spin arrow",
		Body: `This arrow means:
"Which way is this thing spinning?"

This is the important one for the misconception.`,
	}

	TipSwirl = Tooltip{
		Title: "Swirl (extra angular momentum)",
		Body: `This swirl means:
"Something is missing if you only count spins."

When the spins do not add up, motion must carry the extra turning.
No swirl: spins alone work.
Swirl: spins alone do not work.`,
	}
)

// DrawTooltip draws the tooltip box near the mouse, clamped to stay inside
// the window.
func (r *Renderer) DrawTooltip(tip Tooltip, mouseX, mouseY, screenW, screenH float32) {
	const (
		titleSize = 16
		bodySize  = 15
		pad       = float32(10)
		lineGap   = float32(4)
	)

	lines := splitLines(tip.Body)

	w := float32(rl.MeasureText(tip.Title, titleSize))
	for _, line := range lines {
		if lw := float32(rl.MeasureText(line, bodySize)); lw > w {
			w = lw
		}
	}
	w += pad * 2
	h := pad*2 + titleSize + lineGap + float32(len(lines))*(bodySize+lineGap)

	x := mouseX + 16
	y := mouseY + 16
	if x+w > screenW-10 {
		x = screenW - 10 - w
	}
	if y+h > screenH-10 {
		y = screenH - 10 - h
	}
	if x < 10 {
		x = 10
	}
	if y < 10 {
		y = 10
	}

	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rl.Color{R: 10, G: 12, B: 16, A: 230})
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), rl.Color{R: 90, G: 100, B: 125, A: 200})

	rl.DrawText(tip.Title, int32(x+pad), int32(y+pad), titleSize, r.Theme.TitleColor)
	ty := y + pad + titleSize + lineGap
	for _, line := range lines {
		rl.DrawText(line, int32(x+pad), int32(ty), bodySize, rl.Color{R: 220, G: 220, B: 220, A: 255})
		ty += bodySize + lineGap
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
