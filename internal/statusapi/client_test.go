package statusapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drake/pulseboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/features", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("select"))
		assert.Equal(t, "priority.desc,updated_at.desc", r.URL.Query().Get("order"))
		assert.Equal(t, "secret", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"F1","name":"Realtime refresh","status":"OPEN","priority":2,"updated_at":"2026-08-24T10:00:00Z"},
			{"id":"F2","name":"Command palette","status":"COMPLETED","priority":1,"updated_at":"2026-08-23T09:00:00Z"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	features, err := c.GetFeatures(context.Background())
	require.NoError(t, err)
	require.Len(t, features, 2)

	assert.Equal(t, "F1", features[0].ID)
	assert.Equal(t, "Realtime refresh", features[0].Name)
	assert.Equal(t, domain.StatusOpen, features[0].Status)
	assert.True(t, features[1].Completed())
}

func TestGetAlertsAndLearnings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/v1/alerts":
			w.Write([]byte(`[{"id":"A1","severity":"critical","message":"eval regression","created_at":"2026-08-24T08:00:00Z"}]`))
		case "/rest/v1/learnings":
			w.Write([]byte(`[{"id":"L1","title":"Prefer smaller diffs","tag":"workflow","created_at":"2026-08-22T08:00:00Z"}]`))
		case "/rest/v1/health_evals":
			w.Write([]byte(`[{"id":"H1","check":"lint","status":"COMPLETED","score":0.97,"ran_at":"2026-08-24T07:00:00Z"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)

	alerts, err := c.GetAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityCritical, alerts[0].Severity)

	learnings, err := c.GetLearnings(context.Background())
	require.NoError(t, err)
	require.Len(t, learnings, 1)
	assert.Equal(t, "Prefer smaller diffs", learnings[0].Title)

	evals, err := c.GetHealthEvals(context.Background())
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.InDelta(t, 0.97, evals[0].Score, 0.001)
}

func TestAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", nil)
	_, err := c.GetFeatures(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestBackendOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "secret", nil)
	_, err := c.GetFeatures(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendOffline)
}

func TestMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", nil)
	_, err := c.GetFeatures(context.Background())
	assert.Error(t, err)
}
