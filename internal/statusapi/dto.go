package statusapi

import "time"

// Row shapes as the backend returns them. Timestamps arrive as RFC 3339.

type featureDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Priority  int       `json:"priority,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type healthEvalDTO struct {
	ID     string    `json:"id"`
	Check  string    `json:"check"`
	Status string    `json:"status"`
	Score  float64   `json:"score,omitempty"`
	RanAt  time.Time `json:"ran_at"`
}

type alertDTO struct {
	ID        string    `json:"id"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type learningDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Tag       string    `json:"tag,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
