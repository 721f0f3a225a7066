// Package decay models a toy beta decay event: an electron/anti-neutrino pair
// with momentum, spin, and the integer bookkeeping used to show when the
// "spins cancel" shortcut for angular momentum fails.
package decay

// Mode selects which teaching stage the visualization is in. The generator
// branches on it, so switching modes requires a fresh event.
type Mode int

const (
	// ModeSpinOnly is the oversimplified textbook story: spins are forced to
	// cancel exactly, motion is drawn but never interpreted.
	ModeSpinOnly Mode = 1
	// ModeSpinAndMotion adds momentum to the picture, making helicity visible.
	ModeSpinAndMotion Mode = 2
	// ModeFullConservation additionally shows the orbital placeholder term
	// that balances the books when spins alone do not.
	ModeFullConservation Mode = 3
)

// Valid reports whether m is one of the three teaching modes.
func (m Mode) Valid() bool {
	return m >= ModeSpinOnly && m <= ModeFullConservation
}

// Title returns the HUD heading for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSpinOnly:
		return "MODE 1: Spin only (textbook shortcut)"
	case ModeSpinAndMotion:
		return "MODE 2: Add motion (helicity appears)"
	case ModeFullConservation:
		return "MODE 3: Full conservation (orbital placeholder shown)"
	}
	return "MODE ?"
}

// String returns a short identifier used in logs and CSV output.
func (m Mode) String() string {
	switch m {
	case ModeSpinOnly:
		return "spin_only"
	case ModeSpinAndMotion:
		return "spin_and_motion"
	case ModeFullConservation:
		return "full_conservation"
	}
	return "unknown"
}
