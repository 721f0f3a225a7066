package game

import (
	"log/slog"

	"github.com/pthm-cable/betaviz/decay"
	"github.com/pthm-cable/betaviz/telemetry"
)

// hookTelemetry registers the spawn hook that records every generated event
// and flushes window statistics as they fill.
func (g *Game) hookTelemetry() {
	g.session.SetSpawnHook(func(ev *decay.Event, mode decay.Mode, bias float32) {
		rec := telemetry.NewEventRecord(ev, mode, bias, g.session.EventSeq(), g.session.SimTime())
		g.collector.Record(rec)

		if g.logEvents {
			slog.Info("decay_event",
				"seq", rec.Seq,
				"mode", rec.Mode,
				"bias", rec.Bias,
				"proton_spin", rec.ProtonSpinSign,
				"electron_helicity", rec.ElectronHelicity,
				"antinu_helicity", rec.AntinuHelicity,
				"orbital_l", rec.OrbitalL,
				"claim_true", rec.ClaimTrue,
			)
		}

		if err := g.output.WriteEvent(rec); err != nil {
			slog.Error("failed to write event", "error", err)
		}

		if g.collector.WindowFull() {
			if stats, ok := g.collector.FlushWindow(); ok {
				stats.Log()
				if err := g.output.WriteStats(stats); err != nil {
					slog.Error("failed to write stats", "error", err)
				}
			}
		}
	})
}
