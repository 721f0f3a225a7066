// Package vec provides 2D float32 vector math for the simulation.
package vec

import "math"

// Epsilon below which a vector is treated as zero-length.
const normEpsilon = 1e-6

// Vec2 represents a point or direction in 2D space.
type Vec2 struct {
	X float32
	Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Norm returns the unit vector in the direction of v.
// A near-zero-length input yields the zero vector rather than dividing
// by a tiny number.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l <= normEpsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// FromAngle returns the unit vector at angle a radians from the positive x-axis.
func FromAngle(a float32) Vec2 {
	return Vec2{
		X: float32(math.Cos(float64(a))),
		Y: float32(math.Sin(float64(a))),
	}
}

// PointSegmentDistance returns the distance from p to the segment ab.
// A degenerate (zero-length) segment falls back to point distance.
func PointSegmentDistance(p, a, b Vec2) float32 {
	ab := b.Sub(a)
	ab2 := ab.Dot(ab)
	if ab2 <= normEpsilon {
		return p.Sub(a).Len()
	}
	t := p.Sub(a).Dot(ab) / ab2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Scale(t))
	return p.Sub(proj).Len()
}
