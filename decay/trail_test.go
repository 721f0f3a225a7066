package decay

import (
	"testing"

	"github.com/pthm-cable/betaviz/vec"
)

func TestTrailPushBounded(t *testing.T) {
	tr := NewTrail(70)

	for i := 0; i < 500; i++ {
		tr.Push(vec.Vec2{X: float32(i)})
		if tr.Len() > 70 {
			t.Fatalf("trail length %d exceeds capacity after %d pushes", tr.Len(), i+1)
		}
	}

	if tr.Len() != 70 {
		t.Errorf("trail length = %d, want 70", tr.Len())
	}
}

func TestTrailFIFOEviction(t *testing.T) {
	tr := NewTrail(70)

	// Filling to capacity keeps everything.
	for i := 0; i < 70; i++ {
		tr.Push(vec.Vec2{X: float32(i)})
	}
	if got := tr.At(0).X; got != 0 {
		t.Fatalf("oldest sample = %v, want 0", got)
	}

	// The 71st sample evicts exactly the oldest one.
	tr.Push(vec.Vec2{X: 70})
	if tr.Len() != 70 {
		t.Errorf("length after eviction = %d, want 70", tr.Len())
	}
	if got := tr.At(0).X; got != 1 {
		t.Errorf("oldest sample after eviction = %v, want 1", got)
	}
	if got := tr.At(69).X; got != 70 {
		t.Errorf("newest sample = %v, want 70", got)
	}
}

func TestTrailOrder(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 10; i++ {
		tr.Push(vec.Vec2{X: float32(i)})
	}

	want := []float32{6, 7, 8, 9}
	for i, w := range want {
		if got := tr.At(i).X; got != w {
			t.Errorf("At(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestTrailEmpty(t *testing.T) {
	tr := NewTrail(70)
	if tr.Len() != 0 {
		t.Errorf("new trail length = %d, want 0", tr.Len())
	}
	if tr.Cap() != 70 {
		t.Errorf("capacity = %d, want 70", tr.Cap())
	}
}
