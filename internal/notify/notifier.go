// Package notify plays the dashboard's two notification sounds, gated by a
// mute flag that survives restarts.
package notify

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/drake/pulseboard/internal/domain"
)

// Sound identifies one of the two fixed notification sounds.
type Sound int

const (
	// SoundCreated fires when a new feature appears on the board.
	SoundCreated Sound = iota
	// SoundCompleted fires when a tracked feature reaches COMPLETED.
	SoundCompleted
)

func (s Sound) String() string {
	if s == SoundCompleted {
		return "completed"
	}
	return "created"
}

// Durable KV key for the mute preference ("true"/"false").
const keyMuted = "notifications_muted"

// Notifier holds the mute flag and dispatches playback. Playback errors are
// always discarded: a missing player or a blocked audio device degrades to
// silence, never to a crash.
type Notifier struct {
	kv     domain.KV
	player *Player
	bell   io.Writer
	logger *slog.Logger

	muted bool

	// unlocked flips on the first user input. It is informational only and
	// does not gate playback; sounds are attempted unconditionally.
	unlocked bool
}

// New restores the mute flag from the durable KV. A nil player falls back to
// the terminal bell on every Play.
func New(kv domain.KV, player *Player, bell io.Writer, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Notifier{kv: kv, player: player, bell: bell, logger: logger}
	if v, ok := kv.Get(keyMuted); ok {
		n.muted = v == "true"
	}
	return n
}

// Muted returns the current mute flag.
func (n *Notifier) Muted() bool {
	return n.muted
}

// ToggleMute flips the flag and persists it. Storage failures are swallowed;
// the in-memory flag still applies for the rest of the run.
func (n *Notifier) ToggleMute() {
	n.muted = !n.muted
	if err := n.kv.Set(keyMuted, strconv.FormatBool(n.muted)); err != nil {
		n.logger.Debug("mute flag write failed", "error", err)
	}
}

// Unlock records that the user has interacted with the program.
func (n *Notifier) Unlock() {
	n.unlocked = true
}

// Unlocked reports whether any user input has been seen.
func (n *Notifier) Unlocked() bool {
	return n.unlocked
}

// Play emits the sound for kind. A no-op when muted. Prefers the configured
// external player; falls back to the terminal bell.
func (n *Notifier) Play(kind Sound) {
	if n.muted {
		return
	}

	if n.player != nil && n.player.Has(kind) {
		if err := n.player.Play(kind); err != nil {
			n.logger.Debug("sound playback failed", "sound", kind.String(), "error", err)
		}
		return
	}

	if n.bell == nil {
		return
	}
	// Distinct bell patterns per kind so the two events stay tellable apart
	// without audio files configured.
	pattern := "\a"
	if kind == SoundCompleted {
		pattern = "\a\a"
	}
	if _, err := io.WriteString(n.bell, pattern); err != nil {
		n.logger.Debug("bell write failed", "error", err)
	}
}
