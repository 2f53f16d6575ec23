// Package facematch talks to the external face verification service.
// The matcher itself is a black box: we send the stored descriptor and
// the freshly captured one, it answers with a verdict and a distance.
package facematch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Matcher interface {
	Verify(ctx context.Context, employeeID string, descriptor []float64) (MatchResult, error)
}

type MatchResult struct {
	Verified   bool    `json:"verified"`
	Confidence float64 `json:"confidence"`
	Distance   float64 `json:"distance"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type verifyRequest struct {
	EmployeeID string    `json:"employee_id"`
	Descriptor []float64 `json:"descriptor"`
}

// Verify sends the captured descriptor to the matcher. A non-2xx reply
// is a transport error, not a failed match; a failed match comes back
// as Verified=false.
func (c *Client) Verify(ctx context.Context, employeeID string, descriptor []float64) (MatchResult, error) {
	payload, err := json.Marshal(verifyRequest{
		EmployeeID: employeeID,
		Descriptor: descriptor,
	})
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to encode verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/verify", bytes.NewReader(payload))
	if err != nil {
		return MatchResult{}, fmt.Errorf("failed to build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return MatchResult{}, fmt.Errorf("face matcher unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return MatchResult{}, fmt.Errorf("face matcher returned status %d", resp.StatusCode)
	}

	var result MatchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return MatchResult{}, fmt.Errorf("failed to decode matcher response: %w", err)
	}

	return result, nil
}
