package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fittrack/internal/metrics"
)

var ErrNotConfigured = errors.New("insight service not configured")

// WorkoutContext is the slice of a workout record sent to the external
// text-generation service.
type WorkoutContext struct {
	Type            string `json:"type"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	Notes           string `json:"notes,omitempty"`
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// Client talks to the external AI mood-insight service. Callers treat every
// failure as "no insight"; nothing here is load-bearing.
type Client struct {
	url    string
	client *http.Client
}

func New(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) SummarizeMood(ctx context.Context, w WorkoutContext) (string, error) {
	if c.url == "" {
		metrics.RecordInsight("skipped")
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(w)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordInsight("error")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordInsight("error")
		return "", fmt.Errorf("insight service returned %s", resp.Status)
	}

	var parsed insightResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		metrics.RecordInsight("error")
		return "", err
	}

	metrics.RecordInsight("ok")
	return parsed.Insight, nil
}
