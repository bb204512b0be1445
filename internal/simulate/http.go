package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// startSession deals a fresh session for the configured panel.
func startSession(ctx context.Context, client *HTTPClient, baseURL, panelName string) (SessionResponse, error) {
	resp, err := client.Post(ctx, baseURL+"/sessions", map[string]string{"panel": panelName})
	if err != nil {
		return SessionResponse{}, fmt.Errorf("failed to start session: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return SessionResponse{}, fmt.Errorf("failed to read session response: %w", err)
	}
	if resp.StatusCode != StatusCreated {
		return SessionResponse{}, fmt.Errorf("unexpected status %d starting session: %s", resp.StatusCode, string(body))
	}

	var session SessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return SessionResponse{}, fmt.Errorf("failed to decode session response: %w", err)
	}
	return session, nil
}

// submitArrangement scores an arrangement for the given session.
func submitArrangement(ctx context.Context, client *HTTPClient, baseURL, sessionID string, order []string) (ResultResponse, error) {
	url := baseURL + "/sessions/" + sessionID + "/arrangement"
	resp, err := client.Post(ctx, url, map[string][]string{"order": order})
	if err != nil {
		return ResultResponse{}, fmt.Errorf("failed to submit arrangement: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return ResultResponse{}, fmt.Errorf("failed to read result response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return ResultResponse{}, fmt.Errorf("unexpected status %d submitting arrangement: %s", resp.StatusCode, string(body))
	}

	var result ResultResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return ResultResponse{}, fmt.Errorf("failed to decode result response: %w", err)
	}
	return result, nil
}

// fetchPilot fetches the panel table and returns the pilot cap's Lab point.
func fetchPilot(ctx context.Context, client *HTTPClient, baseURL, panelName string) (LabPoint, error) {
	resp, err := client.Get(ctx, baseURL+"/panels/"+panelName)
	if err != nil {
		return LabPoint{}, fmt.Errorf("failed to fetch panel table: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return LabPoint{}, fmt.Errorf("failed to read panel response: %w", err)
	}
	if resp.StatusCode != StatusOK {
		return LabPoint{}, fmt.Errorf("unexpected status %d fetching panel: %s", resp.StatusCode, string(body))
	}

	var table struct {
		Caps []CapInfo `json:"caps"`
	}
	if err := json.Unmarshal(body, &table); err != nil {
		return LabPoint{}, fmt.Errorf("failed to decode panel response: %w", err)
	}
	if len(table.Caps) == 0 {
		return LabPoint{}, fmt.Errorf("panel table is empty")
	}
	// The table is pilot first, anchor last.
	return table.Caps[0].Lab, nil
}
