package sim

import "github.com/pthm-cable/betaviz/decay"

// trailInterval is how much simulated time passes between trail samples.
const trailInterval = 0.02

// StepParticle advances one particle in place by dt seconds: position
// integration, trail sampling, elastic wall reflection, and spin
// re-normalization. dt <= 0 is a no-op, which covers the paused state.
func StepParticle(p *decay.Particle, dt float32, arena Arena) {
	if dt <= 0 {
		return
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	p.TrailTimer += dt
	if p.TrailTimer >= trailInterval {
		p.TrailTimer = 0
		p.Trail.Push(p.Pos)
	}

	// Elastic bounce, each axis handled independently so a corner hit
	// reflects both components in the same step.
	if p.Pos.X < arena.Left()+p.Radius {
		p.Pos.X = arena.Left() + p.Radius
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.X > arena.Right()-p.Radius {
		p.Pos.X = arena.Right() - p.Radius
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < arena.Top()+p.Radius {
		p.Pos.Y = arena.Top() + p.Radius
		p.Vel.Y = -p.Vel.Y
	}
	if p.Pos.Y > arena.Bottom()-p.Radius {
		p.Pos.Y = arena.Bottom() - p.Radius
		p.Vel.Y = -p.Vel.Y
	}

	// Spin direction must stay unit length for the dot products downstream.
	p.SpinDir = p.SpinDir.Norm()
}
