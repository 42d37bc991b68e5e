// Package apiclient handles all communication with the backend API.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	internal_errors "github.com/traden-dev/traden/shared/errors"
	"github.com/traden-dev/traden/shared/utils"
)

type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the backend.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// do is the single, unified helper for making API requests.
// A non-nil body is marshalled as JSON.
func (c *APIClient) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend unavailable: %w", err)
	}
	return resp, nil
}

// errorFromResponse turns a non-2xx response into an ErrorWithStatusCode,
// preserving the backend's error string when the body carries one.
func errorFromResponse(resp *http.Response) error {
	var body utils.ErrorResponse
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &internal_errors.ErrorWithStatusCode{Message: message, StatusCode: resp.StatusCode}
}
