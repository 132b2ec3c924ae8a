package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eventlisting/internal/domain"
	"eventlisting/internal/metrics"
)

// Config holds the statistics service connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type httpClient struct {
	baseURL string
	client  *http.Client
	metrics *metrics.Metrics
}

// NewClient returns a StatsClient that calls the statistics service over HTTP.
// m may be nil.
func NewClient(cfg Config, m *metrics.Metrics) domain.StatsClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		metrics: m,
	}
}

func (c *httpClient) Hit(ctx context.Context, hit domain.EndpointHit) (err error) {
	defer func(started time.Time) { c.metrics.ObserveStats("hit", started, err) }(time.Now())

	body, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("failed to marshal hit: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send hit: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *httpClient) Stats(ctx context.Context, q domain.StatsQuery) (result []domain.ViewStats, err error) {
	defer func(started time.Time) { c.metrics.ObserveStats("stats", started, err) }(time.Now())

	params, err := encodeStatsQuery(q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats service returned status: %d", resp.StatusCode)
	}

	var stats []domain.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	return stats, nil
}

// encodeStatsQuery builds the query string of GET /stats. Each URI is sent as
// its own uris parameter.
func encodeStatsQuery(q domain.StatsQuery) (url.Values, error) {
	start, err := formatTimestamp("start", q.Start)
	if err != nil {
		return nil, err
	}
	end, err := formatTimestamp("end", q.End)
	if err != nil {
		return nil, err
	}
	if q.Start.After(q.End) {
		return nil, domain.NewInternalError("stats query start %s is after end %s", start, end)
	}
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	for _, uri := range q.URIs {
		params.Add("uris", uri)
	}
	params.Set("unique", strconv.FormatBool(q.Unique))
	return params, nil
}

func formatTimestamp(name string, t time.Time) (string, error) {
	if t.IsZero() {
		return "", domain.NewInternalError("stats query %s is not set", name)
	}
	if y := t.UTC().Year(); y < 1 || y > 9999 {
		return "", domain.NewInternalError("stats query %s has unsupported year %d", name, y)
	}
	return domain.FormatTime(t), nil
}
