// Package telemetry records generated decay events and aggregates them into
// windowed statistics for logging and CSV output.
package telemetry

import (
	"github.com/pthm-cable/betaviz/decay"
)

// EventRecord is one generated decay event flattened for logging and CSV.
type EventRecord struct {
	Seq              int64   `csv:"seq"`
	SimTime          float64 `csv:"sim_time"`
	Mode             string  `csv:"mode"`
	Bias             float64 `csv:"bias"`
	ProtonSpinSign   int     `csv:"proton_spin"`
	ElectronHelicity int     `csv:"electron_helicity"`
	AntinuHelicity   int     `csv:"antinu_helicity"`
	OrbitalL         int     `csv:"orbital_l"`
	SpinDot          float64 `csv:"spin_dot"`
	ClaimTrue        bool    `csv:"claim_true"`
}

// NewEventRecord flattens a freshly generated event. The readout is computed
// from creation-time state, before any stepping has occurred.
func NewEventRecord(ev *decay.Event, mode decay.Mode, bias float32, seq int64, simTime float32) EventRecord {
	r := decay.Evaluate(ev)
	return EventRecord{
		Seq:              seq,
		SimTime:          float64(simTime),
		Mode:             mode.String(),
		Bias:             float64(bias),
		ProtonSpinSign:   ev.ProtonSpinSign,
		ElectronHelicity: r.ElectronHelicity,
		AntinuHelicity:   r.AntinuHelicity,
		OrbitalL:         ev.OrbitalL,
		SpinDot:          float64(r.SpinDot),
		ClaimTrue:        r.ClaimLooksTrue,
	}
}

// Collector accumulates event records into fixed-size windows.
type Collector struct {
	windowSize int
	window     []EventRecord
	total      int64
}

// NewCollector creates a collector closing a window every windowSize events.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Collector{
		windowSize: windowSize,
		window:     make([]EventRecord, 0, windowSize),
	}
}

// Record adds one event to the current window.
func (c *Collector) Record(rec EventRecord) {
	c.window = append(c.window, rec)
	c.total++
}

// Total returns the number of events recorded since creation.
func (c *Collector) Total() int64 {
	return c.total
}

// WindowFull reports whether the current window has reached its size.
func (c *Collector) WindowFull() bool {
	return len(c.window) >= c.windowSize
}

// FlushWindow computes statistics over the buffered events and starts a new
// window. Returns false when no events have been recorded since the last
// flush.
func (c *Collector) FlushWindow() (WindowStats, bool) {
	if len(c.window) == 0 {
		return WindowStats{}, false
	}
	stats := ComputeWindowStats(c.window)
	c.window = c.window[:0]
	return stats, true
}
