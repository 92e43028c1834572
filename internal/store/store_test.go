package store

import (
	"testing"
	"time"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltStorePrefsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBoltStore(dir)
	require.NoError(t, err)

	_, ok := s.Get("muted")
	assert.False(t, ok, "missing key should report not present")

	require.NoError(t, s.Set("muted", "true"))

	v, ok := s.Get("muted")
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	// Survives a close/reopen (simulated restart)
	require.NoError(t, s.Close())

	s2, err := NewBoltStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	v, ok = s2.Get("muted")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestBoltStoreBoardCache(t *testing.T) {
	s, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetBoard()
	assert.False(t, ok)

	board := &domain.Board{
		Features: []domain.Feature{
			{ID: "F1", Name: "Realtime refresh", Status: domain.StatusOpen},
		},
		Alerts:    []domain.Alert{{ID: "A1", Severity: domain.SeverityWarning, Message: "eval drift"}},
		FetchedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveBoard(board))

	got, ok := s.GetBoard()
	require.True(t, ok)
	assert.Equal(t, board.Features, got.Features)
	assert.Equal(t, board.Alerts, got.Alerts)
	assert.True(t, board.FetchedAt.Equal(got.FetchedAt))
}

func TestBoltStoreMemoryOnly(t *testing.T) {
	s, err := NewBoltStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("muted", "false"))
	v, ok := s.Get("muted")
	assert.True(t, ok)
	assert.Equal(t, "false", v)
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()

	_, ok := s.Get("session_initialized")
	assert.False(t, ok)

	require.NoError(t, s.Set("session_initialized", "true"))
	v, ok := s.Get("session_initialized")
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}
