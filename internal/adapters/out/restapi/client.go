// Package restapi is the outbound adapter for the REST collaborator that owns
// orders and the menu. It implements the core's store ports over plain HTTP
// and maps the collaborator's wire shapes to domain aggregates, re-deriving
// every total from line items instead of trusting the payload.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client carries the shared HTTP plumbing for the store adapters: base URL,
// underlying http.Client and logger.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the collaborator at baseURL.
// A nil httpClient gets a default with a 10 second timeout. A hung request
// past that point surfaces as a store error; there is no retry here.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger.With("component", "restapi_client"),
	}
}

// do issues a request with an optional JSON body and returns the raw response.
// The caller owns closing the body and classifying the status code.
func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Request to remote store failed", "method", method, "path", path, "error", err)
		return nil, err
	}

	return res, nil
}

// decodeJSON drains and decodes a response body into out.
func decodeJSON(res *http.Response, out any) error {
	defer res.Body.Close()
	return json.NewDecoder(res.Body).Decode(out)
}
