package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/betaviz/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	eventFile *os.File
	statsFile *os.File

	// Track if headers have been written
	eventHeaderWritten bool
	statsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating events.csv: %w", err)
	}
	om.eventFile = f

	f, err = os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		om.eventFile.Close()
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML for reproducibility.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteEvent appends one event record to events.csv.
func (om *OutputManager) WriteEvent(rec EventRecord) error {
	if om == nil {
		return nil
	}

	records := []EventRecord{rec}

	if !om.eventHeaderWritten {
		if err := gocsv.Marshal(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
		om.eventHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.eventFile); err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}

	return nil
}

// WriteStats appends one window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if err := om.eventFile.Close(); err != nil {
		firstErr = err
	}
	if err := om.statsFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
