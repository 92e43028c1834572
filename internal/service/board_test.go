package service

import (
	"context"
	"testing"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/drake/pulseboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	features []domain.Feature
	err      error
}

func (r *fakeRepo) GetFeatures(context.Context) ([]domain.Feature, error) {
	return r.features, r.err
}
func (r *fakeRepo) GetHealthEvals(context.Context) ([]domain.HealthEval, error) {
	return nil, r.err
}
func (r *fakeRepo) GetAlerts(context.Context) ([]domain.Alert, error) { return nil, r.err }
func (r *fakeRepo) GetLearnings(context.Context) ([]domain.Learning, error) {
	return nil, r.err
}

func TestRefreshCachesBoard(t *testing.T) {
	cache, err := store.NewBoltStore("")
	require.NoError(t, err)

	repo := &fakeRepo{features: []domain.Feature{{ID: "F1", Name: "Palette", Status: domain.StatusOpen}}}
	svc := NewBoardService(repo, cache, nil)

	board, fromCache, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, board.Features, 1)
	assert.False(t, board.FetchedAt.IsZero())

	cached, ok := svc.Cached()
	require.True(t, ok)
	assert.Equal(t, board.Features, cached.Features)
}

func TestRefreshFallsBackToCache(t *testing.T) {
	cache, err := store.NewBoltStore("")
	require.NoError(t, err)

	repo := &fakeRepo{features: []domain.Feature{{ID: "F1", Status: domain.StatusOpen}}}
	svc := NewBoardService(repo, cache, nil)

	_, _, err = svc.Refresh(context.Background())
	require.NoError(t, err)

	// Backend goes away: the cached board is served instead.
	repo.err = domain.ErrBackendOffline
	board, fromCache, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, board.Features, 1)
}

func TestRefreshErrorsWithoutCache(t *testing.T) {
	cache, err := store.NewBoltStore("")
	require.NoError(t, err)

	repo := &fakeRepo{err: domain.ErrBackendOffline}
	svc := NewBoardService(repo, cache, nil)

	_, _, err = svc.Refresh(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendOffline)
}
