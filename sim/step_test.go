package sim

import (
	"math"
	"testing"

	"github.com/pthm-cable/betaviz/decay"
	"github.com/pthm-cable/betaviz/vec"
)

func testArena() Arena {
	return Arena{X: 60, Y: 60, W: 980, H: 580}
}

func testParticle() decay.Particle {
	return decay.Particle{
		Name:    "e-",
		Pos:     vec.Vec2{X: 200, Y: 350},
		Vel:     vec.Vec2{X: 260, Y: 0},
		SpinDir: vec.Vec2{X: 1, Y: 0},
		Radius:  8,
		Trail:   decay.NewTrail(70),
	}
}

func TestStepAdvancesPosition(t *testing.T) {
	p := testParticle()
	StepParticle(&p, 0.5, testArena())

	if p.Pos.X != 330 || p.Pos.Y != 350 {
		t.Errorf("position = %v, want (330, 350)", p.Pos)
	}
}

func TestStepZeroDTIsNoOp(t *testing.T) {
	p := testParticle()
	before := p

	StepParticle(&p, 0, testArena())
	StepParticle(&p, -0.1, testArena())

	if p.Pos != before.Pos || p.TrailTimer != before.TrailTimer || p.Trail.Len() != 0 {
		t.Error("dt <= 0 mutated the particle")
	}
}

func TestStepTrailCadence(t *testing.T) {
	p := testParticle()
	a := testArena()

	// Below the sampling interval: no sample yet.
	StepParticle(&p, 0.01, a)
	if p.Trail.Len() != 0 {
		t.Errorf("trail sampled after 0.01s, len = %d", p.Trail.Len())
	}

	// Crossing the interval appends one sample and resets the timer.
	StepParticle(&p, 0.01, a)
	if p.Trail.Len() != 1 {
		t.Errorf("trail len = %d after 0.02s, want 1", p.Trail.Len())
	}
	if p.TrailTimer != 0 {
		t.Errorf("trail timer = %v after sample, want 0", p.TrailTimer)
	}
}

func TestStepTrailBounded(t *testing.T) {
	p := testParticle()
	p.Vel = vec.Vec2{X: 40, Y: 25} // keep it bouncing inside the arena
	a := testArena()

	for i := 0; i < 5000; i++ {
		StepParticle(&p, 0.02, a)
		if p.Trail.Len() > 70 {
			t.Fatalf("trail length %d exceeds 70 at step %d", p.Trail.Len(), i)
		}
	}
	if p.Trail.Len() != 70 {
		t.Errorf("trail length = %d after long run, want 70", p.Trail.Len())
	}
}

func TestStepLeftWallReflection(t *testing.T) {
	a := testArena()
	p := testParticle()
	p.Pos = vec.Vec2{X: a.Left() + 10, Y: 350}
	p.Vel = vec.Vec2{X: -260, Y: 0}

	// One step carries the particle through the wall.
	StepParticle(&p, 0.1, a)

	if p.Pos.X != a.Left()+p.Radius {
		t.Errorf("position after bounce = %v, want x = %v", p.Pos.X, a.Left()+p.Radius)
	}
	if p.Vel.X != 260 {
		t.Errorf("velocity after bounce = %v, want +260", p.Vel.X)
	}
}

func TestStepAllWalls(t *testing.T) {
	a := testArena()
	tests := []struct {
		name    string
		pos     vec.Vec2
		vel     vec.Vec2
		wantPos vec.Vec2
		wantVel vec.Vec2
	}{
		{
			"right wall",
			vec.Vec2{X: a.Right() - 5, Y: 350}, vec.Vec2{X: 260, Y: 0},
			vec.Vec2{X: a.Right() - 8, Y: 350}, vec.Vec2{X: -260, Y: 0},
		},
		{
			"top wall",
			vec.Vec2{X: 500, Y: a.Top() + 5}, vec.Vec2{X: 0, Y: -260},
			vec.Vec2{X: 500, Y: a.Top() + 8}, vec.Vec2{X: 0, Y: 260},
		},
		{
			"bottom wall",
			vec.Vec2{X: 500, Y: a.Bottom() - 5}, vec.Vec2{X: 0, Y: 260},
			vec.Vec2{X: 500, Y: a.Bottom() - 8}, vec.Vec2{X: 0, Y: -260},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParticle()
			p.Pos = tt.pos
			p.Vel = tt.vel

			StepParticle(&p, 0.1, a)

			if p.Pos != tt.wantPos {
				t.Errorf("position = %v, want %v", p.Pos, tt.wantPos)
			}
			if p.Vel != tt.wantVel {
				t.Errorf("velocity = %v, want %v", p.Vel, tt.wantVel)
			}
		})
	}
}

func TestStepCornerReflectsBothAxes(t *testing.T) {
	a := testArena()
	p := testParticle()
	p.Pos = vec.Vec2{X: a.Left() + 10, Y: a.Top() + 10}
	p.Vel = vec.Vec2{X: -200, Y: -200}

	StepParticle(&p, 0.2, a)

	if p.Vel.X != 200 || p.Vel.Y != 200 {
		t.Errorf("corner bounce velocity = %v, want (200, 200)", p.Vel)
	}
	if p.Pos.X != a.Left()+p.Radius || p.Pos.Y != a.Top()+p.Radius {
		t.Errorf("corner bounce position = %v, want clamped to corner", p.Pos)
	}
}

func TestStepRenormalizesSpin(t *testing.T) {
	p := testParticle()
	p.SpinDir = vec.Vec2{X: 0.9999, Y: 0.0001} // drifted off unit length

	StepParticle(&p, 0.016, testArena())

	if got := p.SpinDir.Len(); math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("spin length after step = %v, want 1", got)
	}
}
