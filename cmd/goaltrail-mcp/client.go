package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goaltrail/goaltrail-mcp/internal/common"
)

// APIClient performs the single HTTP exchange behind each tool call.
// Every request carries the bearer credential and a JSON content type; the
// credential never appears in logs or results.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *common.Logger
}

// NewAPIClient creates a client targeting the given backend base URL.
func NewAPIClient(baseURL, token string, logger *common.Logger) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// urlFor composes the absolute URL for a backend request.
func (c *APIClient) urlFor(r *backendRequest) string {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// do executes exactly one backend request and returns the raw response
// body. Any non-2xx status or transport failure becomes an error whose text
// carries the full diagnostic context — method, URL, status, request body,
// and backend payload — so the calling agent can self-diagnose without a
// second round trip.
func (c *APIClient) do(ctx context.Context, r *backendRequest) ([]byte, error) {
	fullURL := c.urlFor(r)

	var reqJSON []byte
	var bodyReader io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqJSON = data
		bodyReader = bytes.NewReader(data)
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Msg("Backend request")

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", r.path).Dur("duration", duration).Msg("Backend request failed")
		return nil, fmt.Errorf("%s %s failed: %w", r.method, fullURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s %s: %w", r.method, fullURL, err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Backend response")

	if resp.StatusCode >= 400 {
		msg := fmt.Sprintf("%s %s returned %d: %s", r.method, fullURL, resp.StatusCode, string(bytes.TrimSpace(body)))
		if reqJSON != nil {
			msg += fmt.Sprintf(" (request body: %s)", string(reqJSON))
		}
		return nil, fmt.Errorf("%s", msg)
	}

	return body, nil
}
