package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/pulseboard/internal/refresh"
	"github.com/drake/pulseboard/internal/tui/styles"
)

// RefreshBar renders the scheduler state in the footer: countdown, paused
// marker, the post-refresh flash, and the mute indicator.
type RefreshBar struct {
	state         refresh.State
	remaining     int
	justRefreshed bool
	fromCache     bool
	muted         bool
	width         int
	hint          string
}

// NewRefreshBar creates the footer bar. hint is appended on the right
// (key help, e.g. the palette chord with the platform's modifier label).
func NewRefreshBar(hint string) RefreshBar {
	return RefreshBar{hint: hint}
}

// SetScheduler mirrors the scheduler's current state into the bar.
func (r *RefreshBar) SetScheduler(s *refresh.Scheduler) {
	r.state = s.State()
	r.remaining = s.Remaining()
	r.justRefreshed = s.JustRefreshed()
}

// SetMuted updates the mute indicator.
func (r *RefreshBar) SetMuted(muted bool) { r.muted = muted }

// SetFromCache marks the displayed board as a stale cache fallback.
func (r *RefreshBar) SetFromCache(fromCache bool) { r.fromCache = fromCache }

// SetWidth updates the bar width.
func (r *RefreshBar) SetWidth(width int) { r.width = width }

// View renders the single footer line.
func (r RefreshBar) View() string {
	var left string
	switch {
	case r.state == refresh.StatePaused:
		left = styles.PausedStyle.Render("⏸ paused") + styles.DimStyle.Render(" · space to resume")
	case r.justRefreshed:
		left = styles.SuccessStyle.Render("↻ refreshed")
	case r.state == refresh.StateActive:
		left = styles.FooterStyle.Render(fmt.Sprintf("↻ next refresh in %ds", r.remaining))
	default:
		left = styles.DimStyle.Render("refresh off")
	}

	if r.fromCache {
		left += styles.ErrorStyle.Render(" · offline (cached)")
	}
	if r.muted {
		left += styles.DimStyle.Render(" · muted")
	}

	right := styles.DimStyle.Render(r.hint)

	gap := r.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
