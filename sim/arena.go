// Package sim owns the live decay event and its real-time state machine:
// discrete commands, pause/step handling, particle stepping with boundary
// reflection, and automatic respawn on event expiry.
package sim

// Arena is the rectangular bounce box particles are confined to.
type Arena struct {
	X, Y, W, H float32
}

// Left returns the x coordinate of the left edge.
func (a Arena) Left() float32 { return a.X }

// Right returns the x coordinate of the right edge.
func (a Arena) Right() float32 { return a.X + a.W }

// Top returns the y coordinate of the top edge.
func (a Arena) Top() float32 { return a.Y }

// Bottom returns the y coordinate of the bottom edge.
func (a Arena) Bottom() float32 { return a.Y + a.H }
