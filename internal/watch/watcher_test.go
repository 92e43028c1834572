package watch

import (
	"errors"
	"testing"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/drake/pulseboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenKV simulates private-browsing style storage: every call fails.
type brokenKV struct{}

func (brokenKV) Get(string) (string, bool) { return "", false }
func (brokenKV) Set(string, string) error  { return errors.New("storage unavailable") }

func snaps(pairs ...string) []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Snapshot{ID: pairs[i], Status: pairs[i+1]})
	}
	return out
}

func TestFreshSessionIsSilent(t *testing.T) {
	w := New(store.NewSessionStore(), nil)

	assert.Equal(t, StateUninitialized, w.State())
	assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusCompleted)))
	assert.Equal(t, StateSeeded, w.State())

	// One more cycle absorbed silently after the seed.
	assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusCompleted)))
	assert.Equal(t, StateWatching, w.State())
}

func TestCreatedFiresOncePerCycle(t *testing.T) {
	w := New(store.NewSessionStore(), nil)
	w.Observe(snaps("F1", domain.StatusOpen))
	w.Observe(snaps("F1", domain.StatusOpen))

	// Two new ids in the same cycle still yield a single created event.
	got := w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen, "F3", domain.StatusOpen))
	assert.Equal(t, EventCreated, got)

	// Nothing changed: no event.
	got = w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen, "F3", domain.StatusOpen))
	assert.Equal(t, EventNone, got)
}

func TestCompletedOutranksCreated(t *testing.T) {
	w := New(store.NewSessionStore(), nil)
	w.Observe(snaps("F1", domain.StatusOpen))
	w.Observe(snaps("F1", domain.StatusOpen))

	// F1 completes and F9 appears in the same cycle: only completed fires.
	got := w.Observe(snaps("F1", domain.StatusCompleted, "F9", domain.StatusOpen))
	assert.Equal(t, EventCompleted, got)

	// F9 was absorbed in the losing cycle and must not re-fire.
	got = w.Observe(snaps("F1", domain.StatusCompleted, "F9", domain.StatusOpen))
	assert.Equal(t, EventNone, got)
}

func TestFirstSeenCompletedIsCreation(t *testing.T) {
	w := New(store.NewSessionStore(), nil)
	w.Observe(nil)
	w.Observe(nil)

	// A feature that first appears already completed is a creation.
	got := w.Observe(snaps("F1", domain.StatusCompleted))
	assert.Equal(t, EventCreated, got)

	// Its completion was absorbed at first sight: no trailing completed event.
	got = w.Observe(snaps("F1", domain.StatusCompleted))
	assert.Equal(t, EventNone, got)
}

func TestSeenSetsAreMonotonic(t *testing.T) {
	w := New(store.NewSessionStore(), nil)
	w.Observe(snaps("F1", domain.StatusOpen))
	w.Observe(snaps("F1", domain.StatusOpen))

	require.Equal(t, EventCompleted, w.Observe(snaps("F1", domain.StatusCompleted)))

	// F1 drops out of the feed entirely, then returns completed: still seen.
	assert.Equal(t, EventNone, w.Observe(nil))
	assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusCompleted)))
}

func TestSessionRestoreSkipsOneCycle(t *testing.T) {
	kv := store.NewSessionStore()

	w := New(kv, nil)
	w.Observe(snaps("F1", domain.StatusOpen))
	w.Observe(snaps("F1", domain.StatusOpen))
	require.Equal(t, EventCreated, w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen)))

	// A second watcher over the same session KV starts seeded, not fresh:
	// it skips exactly one cycle and then diffs against the persisted sets.
	w2 := New(kv, nil)
	assert.Equal(t, StateSeeded, w2.State())
	assert.Equal(t, EventNone, w2.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen)))
	assert.Equal(t, EventCreated, w2.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen, "F3", domain.StatusOpen)))
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	w := New(brokenKV{}, nil)

	// Every persist fails, but observation still works from memory.
	assert.NotPanics(t, func() {
		assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen)))
		assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen)))
		assert.Equal(t, EventCreated, w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen)))
		assert.Equal(t, EventCompleted, w.Observe(snaps("F1", domain.StatusCompleted, "F2", domain.StatusOpen)))
	})

	// A new watcher over the broken KV re-seeds from scratch.
	w2 := New(brokenKV{}, nil)
	assert.Equal(t, StateUninitialized, w2.State())
}

func TestScenarioFromDashboard(t *testing.T) {
	w := New(store.NewSessionStore(), nil)

	// Tab loads with one open feature: silent.
	assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen)))
	assert.Equal(t, EventNone, w.Observe(snaps("F1", domain.StatusOpen)))

	// F2 appears: created fires once.
	assert.Equal(t, EventCreated, w.Observe(snaps("F1", domain.StatusOpen, "F2", domain.StatusOpen)))

	// F1 completes: completed fires, created does not re-fire for F2.
	assert.Equal(t, EventCompleted, w.Observe(snaps("F1", domain.StatusCompleted, "F2", domain.StatusOpen)))
}
