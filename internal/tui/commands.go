package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/pulseboard/internal/service"
)

// Command factories for async operations

// RefreshBoardCmd fetches a fresh board from the backend (or the cache when
// offline). This is the scheduler's revalidation call: coarse, idempotent,
// safe to overlap.
func RefreshBoardCmd(svc *service.BoardService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		board, fromCache, err := svc.Refresh(ctx)
		if err != nil {
			return ErrMsg{Err: err, Context: "refreshing board"}
		}
		return BoardLoadedMsg{Board: board, FromCache: fromCache}
	}
}

// TickCmd returns a command that sends a tick after one second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
