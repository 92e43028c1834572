// Package statusapi talks to the PostgREST-style status backend.
package statusapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/drake/pulseboard/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Pulseboard/1.0"
	restPrefix     = "/rest/v1/"
)

// Client implements domain.BoardRepository against the status backend's
// REST interface.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new status API client.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET against a table endpoint.
func (c *Client) doRequest(ctx context.Context, table string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + restPrefix + table
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("status request", "table", table, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("status request failed", "table", table, "error", err)
		return nil, domain.ErrBackendOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrAuthFailed
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("status request error", "table", table, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// getRows fetches and decodes one table.
func getRows[T any](ctx context.Context, c *Client, table, order string) ([]T, error) {
	query := url.Values{}
	query.Set("select", "*")
	if order != "" {
		query.Set("order", order)
	}

	body, err := c.doRequest(ctx, table, query)
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		c.logger.Error("json parse error", "table", table, "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse %s response: %w", table, err)
	}
	return rows, nil
}

// GetFeatures returns all tracked features.
func (c *Client) GetFeatures(ctx context.Context) ([]domain.Feature, error) {
	rows, err := getRows[featureDTO](ctx, c, "features", "priority.desc,updated_at.desc")
	if err != nil {
		return nil, err
	}
	return mapFeatures(rows), nil
}

// GetHealthEvals returns recent health check runs.
func (c *Client) GetHealthEvals(ctx context.Context) ([]domain.HealthEval, error) {
	rows, err := getRows[healthEvalDTO](ctx, c, "health_evals", "ran_at.desc")
	if err != nil {
		return nil, err
	}
	return mapHealthEvals(rows), nil
}

// GetAlerts returns active alerts.
func (c *Client) GetAlerts(ctx context.Context) ([]domain.Alert, error) {
	rows, err := getRows[alertDTO](ctx, c, "alerts", "created_at.desc")
	if err != nil {
		return nil, err
	}
	return mapAlerts(rows), nil
}

// GetLearnings returns captured learnings.
func (c *Client) GetLearnings(ctx context.Context) ([]domain.Learning, error) {
	rows, err := getRows[learningDTO](ctx, c, "learnings", "created_at.desc")
	if err != nil {
		return nil, err
	}
	return mapLearnings(rows), nil
}
