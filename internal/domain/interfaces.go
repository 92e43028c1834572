package domain

import "context"

// KV is a minimal string key-value store. Both the durable preference store
// and the per-run session store implement it, so consumers can be handed an
// in-memory fake in tests.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)
	// Set stores the value. Callers that can tolerate storage loss are
	// expected to ignore the error.
	Set(key, value string) error
}

// BoardRepository fetches status data from the backend.
type BoardRepository interface {
	GetFeatures(ctx context.Context) ([]Feature, error)
	GetHealthEvals(ctx context.Context) ([]HealthEval, error)
	GetAlerts(ctx context.Context) ([]Alert, error)
	GetLearnings(ctx context.Context) ([]Learning, error)
}

// BoardCache persists the last fetched board for offline fallback.
type BoardCache interface {
	GetBoard() (*Board, bool)
	SaveBoard(board *Board) error
}
