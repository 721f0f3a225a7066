package decay

// Event is one sampled decay: an electron/anti-neutrino pair created together
// and discarded together. Exactly one event is live at a time; the session
// replaces it wholesale, never field by field.
type Event struct {
	Electron Particle
	Antinu   Particle

	ProtonSpinSign  int // +1 or -1, drawn per event
	NeutronSpinSign int // fixed +1 by convention

	// OrbitalL is the toy integer amount of angular momentum that spins alone
	// fail to account for. Computed once at creation, never mutated; zero
	// means spins balance.
	OrbitalL int

	TimeAlive float32 // seconds since creation
	Duration  float32 // lifetime; the event is replaced once TimeAlive reaches it
}

// Expired reports whether the event has outlived its duration.
func (e *Event) Expired() bool {
	return e.TimeAlive >= e.Duration
}
