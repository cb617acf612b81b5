package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"jobguard/internal/records"
)

// Client calls the remote inference space that classifies a job description
// and renders an explanation. The space is treated as opaque: it returns the
// confidence object verbatim and the explanation as pre-escaped markup.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a classifier client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("CLASSIFIER_URL is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type predictRequest struct {
	Data []any `json:"data"`
}

type predictResponse struct {
	Data []json.RawMessage `json:"data"`
}

// Predict submits the raw job description and returns the confidence object
// plus the explanation markup.
func (c *Client) Predict(ctx context.Context, text string) (records.Confidence, string, error) {
	body, err := json.Marshal(predictRequest{Data: []any{text}})
	if err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run/predict", bytes.NewReader(body))
	if err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return records.Confidence{}, "", fmt.Errorf("classifier: unexpected status %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	var parsed predictResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: decode response: %w", err)
	}
	if len(parsed.Data) < 2 {
		return records.Confidence{}, "", fmt.Errorf("classifier: expected confidence and explanation, got %d outputs", len(parsed.Data))
	}

	var confidence records.Confidence
	if err := json.Unmarshal(parsed.Data[0], &confidence); err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: decode confidence: %w", err)
	}
	if confidence.Label == "" {
		return records.Confidence{}, "", fmt.Errorf("classifier: empty verdict label")
	}

	var explanation string
	if err := json.Unmarshal(parsed.Data[1], &explanation); err != nil {
		return records.Confidence{}, "", fmt.Errorf("classifier: decode explanation: %w", err)
	}

	return confidence, explanation, nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
