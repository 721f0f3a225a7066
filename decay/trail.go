package decay

import "github.com/pthm-cable/betaviz/vec"

// Trail is a bounded FIFO of past positions, implemented as a ring buffer.
// When full, pushing a new sample evicts the oldest one. Insertion order is
// preserved for fade-out rendering.
type Trail struct {
	points []vec.Vec2
	head   int // index of the oldest sample
	count  int
}

// NewTrail creates an empty trail holding at most capacity samples.
func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{points: make([]vec.Vec2, capacity)}
}

// Push appends p, evicting the oldest sample when the trail is full.
func (t *Trail) Push(p vec.Vec2) {
	if t.count < len(t.points) {
		t.points[(t.head+t.count)%len(t.points)] = p
		t.count++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % len(t.points)
}

// Len returns the number of stored samples.
func (t *Trail) Len() int {
	return t.count
}

// Cap returns the maximum number of samples the trail can hold.
func (t *Trail) Cap() int {
	return len(t.points)
}

// At returns the i-th sample, oldest first. i must be in [0, Len()).
func (t *Trail) At(i int) vec.Vec2 {
	return t.points[(t.head+i)%len(t.points)]
}
