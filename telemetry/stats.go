package telemetry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics over one window of decay events.
type WindowStats struct {
	WindowEnd int64 `csv:"window_end"` // seq of the last event in the window
	Events    int   `csv:"events"`

	// Fraction of events where the spins-opposite claim looked true.
	ClaimRate float64 `csv:"claim_rate"`

	// Fraction of left-handed electrons (helicity -1); tracks the bias
	// control outside spin-only mode.
	LeftHandedRate float64 `csv:"left_handed_rate"`

	SpinDotMean float64 `csv:"spin_dot_mean"`
	SpinDotStd  float64 `csv:"spin_dot_std"`

	// Fraction of events where spins alone already balanced.
	OrbitalZeroRate float64 `csv:"orbital_zero_rate"`
	OrbitalMeanAbs  float64 `csv:"orbital_mean_abs"`
}

// ComputeWindowStats aggregates a non-empty slice of event records.
func ComputeWindowStats(records []EventRecord) WindowStats {
	n := len(records)
	ws := WindowStats{
		WindowEnd: records[n-1].Seq,
		Events:    n,
	}

	spinDots := make([]float64, n)
	claims, left, zeroL := 0, 0, 0
	absL := 0.0
	for i, rec := range records {
		spinDots[i] = rec.SpinDot
		if rec.ClaimTrue {
			claims++
		}
		if rec.ElectronHelicity < 0 {
			left++
		}
		if rec.OrbitalL == 0 {
			zeroL++
		}
		absL += math.Abs(float64(rec.OrbitalL))
	}

	ws.ClaimRate = float64(claims) / float64(n)
	ws.LeftHandedRate = float64(left) / float64(n)
	ws.OrbitalZeroRate = float64(zeroL) / float64(n)
	ws.OrbitalMeanAbs = absL / float64(n)

	ws.SpinDotMean = stat.Mean(spinDots, nil)
	if n > 1 {
		ws.SpinDotStd = stat.StdDev(spinDots, nil)
	}

	return ws
}

// Log writes the window stats via slog.
func (ws WindowStats) Log() {
	slog.Info("window_stats",
		"window_end", ws.WindowEnd,
		"events", ws.Events,
		"claim_rate", ws.ClaimRate,
		"left_handed_rate", ws.LeftHandedRate,
		"spin_dot_mean", ws.SpinDotMean,
		"spin_dot_std", ws.SpinDotStd,
		"orbital_zero_rate", ws.OrbitalZeroRate,
	)
}
