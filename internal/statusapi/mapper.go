package statusapi

import "github.com/drake/pulseboard/internal/domain"

func mapFeatures(rows []featureDTO) []domain.Feature {
	out := make([]domain.Feature, len(rows))
	for i, r := range rows {
		out[i] = domain.Feature{
			ID:        r.ID,
			Name:      r.Name,
			Status:    r.Status,
			Priority:  r.Priority,
			UpdatedAt: r.UpdatedAt,
		}
	}
	return out
}

func mapHealthEvals(rows []healthEvalDTO) []domain.HealthEval {
	out := make([]domain.HealthEval, len(rows))
	for i, r := range rows {
		out[i] = domain.HealthEval{
			ID:     r.ID,
			Check:  r.Check,
			Status: r.Status,
			Score:  r.Score,
			RanAt:  r.RanAt,
		}
	}
	return out
}

func mapAlerts(rows []alertDTO) []domain.Alert {
	out := make([]domain.Alert, len(rows))
	for i, r := range rows {
		out[i] = domain.Alert{
			ID:        r.ID,
			Severity:  r.Severity,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}

func mapLearnings(rows []learningDTO) []domain.Learning {
	out := make([]domain.Learning, len(rows))
	for i, r := range rows {
		out[i] = domain.Learning{
			ID:        r.ID,
			Title:     r.Title,
			Tag:       r.Tag,
			CreatedAt: r.CreatedAt,
		}
	}
	return out
}
