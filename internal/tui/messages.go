package tui

import "github.com/drake/pulseboard/internal/domain"

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// BoardLoadedMsg signals that a poll cycle returned a board.
type BoardLoadedMsg struct {
	Board     *domain.Board
	FromCache bool
}

// TickMsg drives the one-second scheduler heartbeat.
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
