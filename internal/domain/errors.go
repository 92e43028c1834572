package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBackendOffline indicates the status backend is unreachable
	ErrBackendOffline = errors.New("status backend is unreachable")

	// ErrAuthFailed indicates the API key was rejected
	ErrAuthFailed = errors.New("api key is invalid")

	// ErrNotCached indicates no cached board is available for offline fallback
	ErrNotCached = errors.New("no cached board available")
)
