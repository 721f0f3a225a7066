package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/betaviz/decay"
	"github.com/pthm-cable/betaviz/renderer"
	"github.com/pthm-cable/betaviz/ui"
	"github.com/pthm-cable/betaviz/vec"
)

// Scene geometry constants. Arrow lengths are fixed in pixels regardless of
// particle speed so the picture stays readable.
const (
	protonOffsetX = 40.0

	spinOnlyArrowLen = 55.0
	momentumArrowLen = 60.0
	spinArrowLen     = 48.0
	spinArrowPerp    = 10.0

	arrowHoverDist = 8.0
)

// arrowSeg is one drawn arrow shaft, kept for hover hit-testing.
type arrowSeg struct {
	a, b vec.Vec2
	spin bool
}

// Draw renders one full frame.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(renderer.ColorWindowBg)

	a := g.session.Arena()
	ax, ay := int32(a.X), int32(a.Y)
	aw, ah := int32(a.W), int32(a.H)

	rl.DrawRectangle(ax, ay, aw, ah, renderer.ColorArenaBg)
	g.background.Draw(ax, ay, aw, ah, g.session.SimTime())
	rl.DrawRectangleLines(ax, ay, aw, ah, renderer.ColorArenaBorder)
	rl.DrawRectangleLines(ax-1, ay-1, aw+2, ah+2, renderer.ColorArenaBorder)

	ev := g.session.Current()
	origin := g.session.Origin()
	protonPos := origin.Add(vec.Vec2{X: protonOffsetX})

	if g.session.Mode() == decay.ModeFullConservation {
		renderer.DrawOrbitalSwirl(origin, ev.OrbitalL, g.session.SimTime())
	}

	renderer.DrawGlowCircle(origin, 18, renderer.ColorNeutron)
	renderer.DrawGlowCircle(protonPos, 14, renderer.ColorProton)
	g.uiRenderer.DrawCenteredLabel(origin.X, origin.Y-34, "Neutron")
	g.uiRenderer.DrawCenteredLabel(protonPos.X, protonPos.Y+30, "Proton")

	renderer.DrawTrail(&ev.Electron)
	renderer.DrawTrail(&ev.Antinu)

	g.arrowSegs = g.arrowSegs[:0]
	g.drawParticle(&ev.Electron, "Electron")
	g.drawParticle(&ev.Antinu, "Anti-neutrino")

	g.hud.Draw(ui.HUDData{
		Mode:           g.session.Mode(),
		Paused:         g.session.Paused(),
		Help:           g.session.ShowHelp(),
		Bias:           g.session.Bias(),
		Readout:        g.session.Readout(),
		ProtonSpinSign: ev.ProtonSpinSign,
		OrbitalL:       ev.OrbitalL,
		ArenaX:         ax,
		ArenaY:         ay,
		ArenaW:         aw,
		ArenaH:         ah,
	})

	newBias := g.biasSlider.Draw(g.session.Bias(),
		float32(g.cfg.Decay.BiasMin), float32(g.cfg.Decay.BiasMax))
	if newBias != g.session.Bias() {
		g.session.SetBias(newBias)
	}

	g.updateHover(ev, origin, protonPos)
	if g.hoverTip != nil {
		mouse := rl.GetMousePosition()
		g.uiRenderer.DrawTooltip(*g.hoverTip, mouse.X, mouse.Y,
			float32(g.cfg.Screen.Width), float32(g.cfg.Screen.Height))
	}

	rl.EndDrawing()
}

// drawParticle draws one decay product: glow, label, and its vector arrows
// for the current mode. Arrow shafts are recorded for hover hit-testing.
func (g *Game) drawParticle(p *decay.Particle, label string) {
	col := renderer.ParticleColor(p.Kind)
	renderer.DrawGlowCircle(p.Pos, p.Radius, col)
	g.uiRenderer.DrawCenteredLabel(p.Pos.X, p.Pos.Y-p.Radius-18, label)

	if g.session.Mode() == decay.ModeSpinOnly {
		// Spin-only mode hides motion: one spin arrow, nothing else.
		renderer.DrawArrow(p.Pos, p.SpinDir, spinOnlyArrowLen, renderer.ColorSpinArrow)
		g.arrowSegs = append(g.arrowSegs, arrowSeg{
			a:    p.Pos,
			b:    p.Pos.Add(p.SpinDir.Scale(spinOnlyArrowLen)),
			spin: true,
		})
		return
	}

	mom := p.MomentumDir()
	renderer.DrawArrow(p.Pos, mom, momentumArrowLen, renderer.ColorMomentumArrow)
	g.arrowSegs = append(g.arrowSegs, arrowSeg{
		a: p.Pos,
		b: p.Pos.Add(mom.Scale(momentumArrowLen)),
	})

	// Spin arrow is offset sideways so it never sits on top of momentum.
	spinFrom := p.Pos.Add(mom.Perp().Scale(spinArrowPerp))
	renderer.DrawArrow(spinFrom, p.SpinDir, spinArrowLen, renderer.ColorSpinArrow)
	g.arrowSegs = append(g.arrowSegs, arrowSeg{
		a:    spinFrom,
		b:    spinFrom.Add(p.SpinDir.Scale(spinArrowLen)),
		spin: true,
	})
}

// updateHover picks at most one tooltip for the mouse position, testing
// targets from most to least prominent.
func (g *Game) updateHover(ev *decay.Event, origin, protonPos vec.Vec2) {
	g.hoverTip = nil

	m := rl.GetMousePosition()
	mouse := vec.Vec2{X: m.X, Y: m.Y}

	switch {
	case mouse.Sub(origin).Len() < 24:
		g.hoverTip = &ui.TipNeutron
		return
	case mouse.Sub(protonPos).Len() < 20:
		g.hoverTip = &ui.TipProton
		return
	case mouse.Sub(ev.Electron.Pos).Len() < 18:
		g.hoverTip = &ui.TipElectron
		return
	case mouse.Sub(ev.Antinu.Pos).Len() < 16:
		g.hoverTip = &ui.TipAntinu
		return
	}

	if g.session.Mode() == decay.ModeFullConservation {
		d := mouse.Sub(origin).Len()
		band := d - renderer.SwirlRadius(ev.OrbitalL)
		if band < 0 {
			band = -band
		}
		if band < renderer.SwirlHoverBand {
			g.hoverTip = &ui.TipSwirl
			return
		}
	}

	for _, seg := range g.arrowSegs {
		if vec.PointSegmentDistance(mouse, seg.a, seg.b) < arrowHoverDist {
			if seg.spin {
				g.hoverTip = &ui.TipSpin
			} else {
				g.hoverTip = &ui.TipMomentum
			}
			return
		}
	}
}
