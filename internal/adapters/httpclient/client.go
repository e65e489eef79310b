package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"paste-upload/internal/core/port"
	"time"
)

// responses larger than this are truncated; upload APIs answer with small
// JSON documents
const maxResponseBytes = 4 << 20

// Client sends outbound upload requests over net/http with a shared tuned
// transport.
type Client struct {
	http *http.Client
}

// NewClient creates a new outbound HTTP client
func NewClient(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Do issues the request and materializes the response body
func (c *Client) Do(ctx context.Context, req port.Request) (*port.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &port.Response{StatusCode: resp.StatusCode, Body: body}, nil
}
