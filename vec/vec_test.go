package vec

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"unit x", Vec2{1, 0}, Vec2{1, 0}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
		{"negative", Vec2{0, -2}, Vec2{0, -1}},
		{"zero vector", Vec2{0, 0}, Vec2{0, 0}},
		{"near zero", Vec2{1e-7, -1e-7}, Vec2{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Norm()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Norm(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormIsUnitLength(t *testing.T) {
	v := Vec2{-17.3, 4.9}.Norm()
	if !almostEqual(v.Len(), 1) {
		t.Errorf("Len(Norm(v)) = %v, want 1", v.Len())
	}
}

func TestDot(t *testing.T) {
	if got := (Vec2{1, 0}).Dot(Vec2{0, 1}); got != 0 {
		t.Errorf("orthogonal dot = %v, want 0", got)
	}
	if got := (Vec2{2, 3}).Dot(Vec2{4, -1}); got != 5 {
		t.Errorf("dot = %v, want 5", got)
	}
}

func TestPerp(t *testing.T) {
	v := Vec2{0.8, -0.6}
	p := v.Perp()

	// Perpendicular and same length
	if !almostEqual(v.Dot(p), 0) {
		t.Errorf("v.Dot(Perp(v)) = %v, want 0", v.Dot(p))
	}
	if !almostEqual(p.Len(), v.Len()) {
		t.Errorf("Len(Perp(v)) = %v, want %v", p.Len(), v.Len())
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(0)
	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 0) {
		t.Errorf("FromAngle(0) = %v, want (1, 0)", v)
	}
	v = FromAngle(math.Pi / 2)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 1) {
		t.Errorf("FromAngle(pi/2) = %v, want (0, 1)", v)
	}
}

func TestPointSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Vec2
		want    float32
	}{
		{"above middle", Vec2{5, 3}, Vec2{0, 0}, Vec2{10, 0}, 3},
		{"beyond end clamps to b", Vec2{13, 4}, Vec2{0, 0}, Vec2{10, 0}, 5},
		{"before start clamps to a", Vec2{-3, 4}, Vec2{0, 0}, Vec2{10, 0}, 5},
		{"on segment", Vec2{4, 0}, Vec2{0, 0}, Vec2{10, 0}, 0},
		{"degenerate segment", Vec2{3, 4}, Vec2{0, 0}, Vec2{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointSegmentDistance(tt.p, tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("PointSegmentDistance = %v, want %v", got, tt.want)
			}
		})
	}
}
