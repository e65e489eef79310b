package port

import "context"

// Request is one outbound HTTP request to the configured upload endpoint
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response is the endpoint's answer, body fully materialized
type Response struct {
	StatusCode int
	Body       []byte
}

// RequestSender is an interface to define the outbound HTTP primitive
type RequestSender interface {
	Do(ctx context.Context, req Request) (*Response, error)
}
