// Package watch detects feature changes between poll cycles.
//
// The watcher is a small state machine (Uninitialized -> Seeded -> Watching)
// that compares each cycle's snapshots against the seen-sets persisted in a
// session-scoped KV. Seeding never notifies, so a fresh session stays silent
// on its first data load no matter how many features exist.
package watch

import (
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/drake/pulseboard/internal/domain"
)

// Session KV keys
const (
	keySeenIDs       = "seen_feature_ids"
	keySeenCompleted = "seen_completed_ids"
	keyInitialized   = "session_initialized"
)

// State is the watcher lifecycle state.
type State int

const (
	// StateUninitialized means no baseline has been recorded this session.
	StateUninitialized State = iota
	// StateSeeded means the baseline exists; one more cycle is absorbed
	// silently before diffing starts. This replaces the old "skip first
	// effect" guard that compared a payload against itself right after load.
	StateSeeded
	// StateWatching means cycles are diffed and may emit events.
	StateWatching
)

// Event is the outcome of one observation cycle. At most one event fires per
// cycle; a completion outranks a creation.
type Event int

const (
	EventNone Event = iota
	EventCreated
	EventCompleted
)

func (e Event) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventCompleted:
		return "completed"
	default:
		return "none"
	}
}

// Watcher tracks which feature ids have been observed this session.
type Watcher struct {
	kv     domain.KV
	logger *slog.Logger

	state         State
	seen          map[string]struct{}
	seenCompleted map[string]struct{}
}

// New restores watcher state from the session KV. When the init marker is
// absent (fresh session, or storage that drops writes) the watcher re-seeds,
// trading extra notifications for never crashing.
func New(kv domain.KV, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		kv:            kv,
		logger:        logger,
		seen:          loadSet(kv, keySeenIDs),
		seenCompleted: loadSet(kv, keySeenCompleted),
	}
	if v, ok := kv.Get(keyInitialized); ok && v == "true" {
		w.state = StateSeeded
	}
	return w
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	return w.state
}

// Observe runs one cycle against the current snapshots and returns the event
// to surface, if any. Seen-sets grow monotonically: ids are never removed,
// even when a feature later disappears from the feed.
func (w *Watcher) Observe(snaps []domain.Snapshot) Event {
	switch w.state {
	case StateUninitialized:
		w.absorb(snaps)
		w.persist()
		if err := w.kv.Set(keyInitialized, "true"); err != nil {
			w.logger.Debug("session marker write failed", "error", err)
		}
		w.state = StateSeeded
		return EventNone

	case StateSeeded:
		w.absorb(snaps)
		w.persist()
		w.state = StateWatching
		return EventNone

	default:
		return w.diff(snaps)
	}
}

func (w *Watcher) diff(snaps []domain.Snapshot) Event {
	var newIDs, newCompleted int
	for _, s := range snaps {
		_, known := w.seen[s.ID]
		if !known {
			newIDs++
			continue
		}
		// Completions only count for ids already seen as not-completed. A
		// feature that first appears already completed is a creation, not a
		// completion.
		if s.Completed() {
			if _, done := w.seenCompleted[s.ID]; !done {
				newCompleted++
			}
		}
	}

	w.absorb(snaps)
	w.persist()

	if newCompleted > 0 {
		return EventCompleted
	}
	if newIDs > 0 {
		return EventCreated
	}
	return EventNone
}

// absorb merges the current snapshots into the seen-sets.
func (w *Watcher) absorb(snaps []domain.Snapshot) {
	for _, s := range snaps {
		w.seen[s.ID] = struct{}{}
		if s.Completed() {
			w.seenCompleted[s.ID] = struct{}{}
		}
	}
}

// persist writes both seen-sets back to the session KV. Write failures are
// swallowed: the watcher keeps working from memory for the rest of the run.
func (w *Watcher) persist() {
	if err := saveSet(w.kv, keySeenIDs, w.seen); err != nil {
		w.logger.Debug("seen-set write failed", "key", keySeenIDs, "error", err)
	}
	if err := saveSet(w.kv, keySeenCompleted, w.seenCompleted); err != nil {
		w.logger.Debug("seen-set write failed", "key", keySeenCompleted, "error", err)
	}
}

// loadSet reads a JSON string array from the KV. Missing or corrupt values
// yield an empty set.
func loadSet(kv domain.KV, key string) map[string]struct{} {
	set := make(map[string]struct{})
	raw, ok := kv.Get(key)
	if !ok {
		return set
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func saveSet(kv domain.KV, key string, set map[string]struct{}) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return kv.Set(key, string(data))
}
