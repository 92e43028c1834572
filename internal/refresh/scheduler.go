// Package refresh drives the dashboard's polling cadence.
//
// The scheduler is a pure state machine advanced by a once-per-second tick
// from the UI loop. It never performs the refetch itself; it only tells the
// caller when one is due. Overlap between ticks is impossible because the
// tick source is single-threaded and the interval exceeds per-tick work.
package refresh

// State is the scheduler lifecycle state.
type State int

const (
	// StateInactive means no consumer is mounted; the countdown is frozen.
	StateInactive State = iota
	// StateActive means the countdown is running.
	StateActive
	// StatePaused means the user stopped the countdown. Resuming restarts
	// at the full interval, never mid-countdown.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return "inactive"
	}
}

const (
	// DefaultIntervalSeconds is the poll interval.
	DefaultIntervalSeconds = 5
	// flashSeconds is how long the "just refreshed" indicator stays lit.
	flashSeconds = 2
)

// Scheduler counts down to the next revalidation.
type Scheduler struct {
	interval  int
	state     State
	remaining int
	flash     int
}

// NewScheduler creates an inactive scheduler. A non-positive interval falls
// back to the default.
func NewScheduler(intervalSeconds int) *Scheduler {
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultIntervalSeconds
	}
	return &Scheduler{interval: intervalSeconds}
}

// Activate starts the countdown at the full interval. Called when a
// consuming view mounts; a no-op while already active or paused.
func (s *Scheduler) Activate() {
	if s.state != StateInactive {
		return
	}
	s.state = StateActive
	s.remaining = s.interval
}

// Deactivate stops the scheduler entirely. Called on view unmount.
func (s *Scheduler) Deactivate() {
	s.state = StateInactive
	s.remaining = 0
	s.flash = 0
}

// TogglePause flips between running and paused. Pausing freezes the
// countdown where it stands; resuming resets it to the full interval.
func (s *Scheduler) TogglePause() {
	switch s.state {
	case StateActive:
		s.state = StatePaused
	case StatePaused:
		s.state = StateActive
		s.remaining = s.interval
	}
}

// Tick advances the scheduler by one second. It returns true when a
// revalidation is due; the countdown has already been reset for the next
// cycle when it does.
func (s *Scheduler) Tick() bool {
	if s.flash > 0 {
		s.flash--
	}
	if s.state != StateActive {
		return false
	}
	s.remaining--
	if s.remaining > 0 {
		return false
	}
	s.remaining = s.interval
	s.flash = flashSeconds
	return true
}

// Remaining returns the seconds left until the next refresh.
func (s *Scheduler) Remaining() int {
	return s.remaining
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// JustRefreshed reports whether the post-refresh flash is still showing.
func (s *Scheduler) JustRefreshed() bool {
	return s.flash > 0
}
