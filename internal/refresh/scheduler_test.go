package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiresAtInterval(t *testing.T) {
	s := NewScheduler(5)
	s.Activate()

	for i := 0; i < 4; i++ {
		assert.False(t, s.Tick(), "tick %d should not fire", i)
	}
	assert.True(t, s.Tick(), "fifth tick should fire")

	// Countdown resets for the next cycle.
	assert.Equal(t, 5, s.Remaining())
	assert.True(t, s.JustRefreshed())
}

func TestInactiveNeverFires(t *testing.T) {
	s := NewScheduler(1)

	for i := 0; i < 10; i++ {
		assert.False(t, s.Tick())
	}
	assert.Equal(t, StateInactive, s.State())
}

func TestPauseFreezesCountdown(t *testing.T) {
	s := NewScheduler(5)
	s.Activate()

	s.Tick()
	s.Tick()
	assert.Equal(t, 3, s.Remaining())

	s.TogglePause()
	assert.Equal(t, StatePaused, s.State())

	for i := 0; i < 10; i++ {
		assert.False(t, s.Tick())
	}
	assert.Equal(t, 3, s.Remaining(), "countdown must not move while paused")

	// Resume restarts at the full interval, not the frozen value.
	s.TogglePause()
	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 5, s.Remaining())
}

func TestFlashExpires(t *testing.T) {
	s := NewScheduler(1)
	s.Activate()

	assert.True(t, s.Tick())
	assert.True(t, s.JustRefreshed())

	// Flash holds for two seconds, then clears.
	s.Tick()
	assert.True(t, s.JustRefreshed())
	s.Tick()
	assert.False(t, s.JustRefreshed())
}

func TestDeactivateClearsState(t *testing.T) {
	s := NewScheduler(2)
	s.Activate()
	s.Tick()

	s.Deactivate()
	assert.Equal(t, StateInactive, s.State())
	assert.Equal(t, 0, s.Remaining())
	assert.False(t, s.JustRefreshed())

	// Re-mounting starts a fresh countdown.
	s.Activate()
	assert.Equal(t, 2, s.Remaining())
}

func TestDefaultInterval(t *testing.T) {
	s := NewScheduler(0)
	s.Activate()
	assert.Equal(t, DefaultIntervalSeconds, s.Remaining())
}
