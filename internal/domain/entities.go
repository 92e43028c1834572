package domain

import "time"

// Status values reported by the backend for features and health checks.
const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusBlocked    = "BLOCKED"
	StatusCompleted  = "COMPLETED"
)

// Alert severities
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Feature is a tracked unit of work on the status board.
type Feature struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Priority  int       `json:"priority"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Completed reports whether the feature has reached its terminal status.
func (f Feature) Completed() bool {
	return f.Status == StatusCompleted
}

// HealthEval is one run of a health check against the system under watch.
type HealthEval struct {
	ID     string    `json:"id"`
	Check  string    `json:"check"`
	Status string    `json:"status"`
	Score  float64   `json:"score"`
	RanAt  time.Time `json:"ran_at"`
}

// Alert is an operator-facing notification raised by the backend.
type Alert struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Learning is a captured insight surfaced on the board.
type Learning struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag"`
	CreatedAt time.Time `json:"created_at"`
}

// Page is a navigable dashboard view, used by the command palette.
type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

// Board is the full dashboard payload for one poll cycle.
type Board struct {
	Features  []Feature    `json:"features"`
	Health    []HealthEval `json:"health"`
	Alerts    []Alert      `json:"alerts"`
	Learnings []Learning   `json:"learnings"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Snapshot is the minimal {id, status} projection of a feature used for
// change detection. It is never persisted server-side.
type Snapshot struct {
	ID     string
	Status string
}

// Completed reports whether the snapshot carries the terminal status.
func (s Snapshot) Completed() bool {
	return s.Status == StatusCompleted
}

// FeatureSnapshots projects features down to watcher snapshots.
func FeatureSnapshots(features []Feature) []Snapshot {
	snaps := make([]Snapshot, len(features))
	for i, f := range features {
		snaps[i] = Snapshot{ID: f.ID, Status: f.Status}
	}
	return snaps
}
