package stage

// PauseSignal is the global pause query the driving loop consults before
// running an update pass. The registry itself is pause-agnostic: freezing all
// temporal state is the caller's responsibility, decided in one place.
type PauseSignal interface {
	Paused() bool
}

// PauseState is a trivial PauseSignal owned by the driving loop.
type PauseState struct {
	paused bool
}

// Paused reports whether the simulation is paused.
func (p *PauseState) Paused() bool {
	return p != nil && p.paused
}

// SetPaused sets the pause flag.
func (p *PauseState) SetPaused(v bool) {
	if p == nil {
		return
	}
	p.paused = v
}

// Toggle flips the pause flag.
func (p *PauseState) Toggle() {
	if p == nil {
		return
	}
	p.paused = !p.paused
}
