// Package service coordinates board fetches and the offline cache.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/drake/pulseboard/internal/domain"
)

// BoardService fetches the full board from the backend and writes it through
// to the durable cache. When the backend is unreachable it serves the last
// cached board instead, so stale data stays on screen rather than erroring.
type BoardService struct {
	repo   domain.BoardRepository
	cache  domain.BoardCache
	logger *slog.Logger
	now    func() time.Time
}

// NewBoardService creates a new board service.
func NewBoardService(repo domain.BoardRepository, cache domain.BoardCache, logger *slog.Logger) *BoardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BoardService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Refresh fetches a fresh board. The bool reports whether the returned board
// came from the cache. An error is only returned when the backend failed AND
// no cached board exists.
func (s *BoardService) Refresh(ctx context.Context) (*domain.Board, bool, error) {
	board, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("board fetch failed, trying cache", "error", err)
		if cached, ok := s.cache.GetBoard(); ok {
			return cached, true, nil
		}
		return nil, false, err
	}

	if err := s.cache.SaveBoard(board); err != nil {
		// Cache loss only costs the offline fallback; the fresh board is fine.
		s.logger.Warn("board cache write failed", "error", err)
	}
	return board, false, nil
}

// Cached returns the last persisted board, if any.
func (s *BoardService) Cached() (*domain.Board, bool) {
	return s.cache.GetBoard()
}

func (s *BoardService) fetch(ctx context.Context) (*domain.Board, error) {
	features, err := s.repo.GetFeatures(ctx)
	if err != nil {
		return nil, err
	}
	health, err := s.repo.GetHealthEvals(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.repo.GetAlerts(ctx)
	if err != nil {
		return nil, err
	}
	learnings, err := s.repo.GetLearnings(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Board{
		Features:  features,
		Health:    health,
		Alerts:    alerts,
		Learnings: learnings,
		FetchedAt: s.now(),
	}, nil
}
