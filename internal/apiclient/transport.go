// Package apiclient talks to the finance REST API: transport, retries,
// response caching and the typed endpoint methods.
package apiclient

import (
	"context"
	"net/http"
)

// Request is one outbound call. Path includes any query string.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// IsRead reports whether the request is an idempotent read that may be cached.
func (r Request) IsRead() bool {
	return r.Method == "" || r.Method == http.MethodGet
}

// Transport delivers a request and returns the raw response body.
// Non-2xx responses must be returned as *apperrors.APIError; failures to get
// any response must wrap apperrors.ErrTransport.
type Transport interface {
	Do(ctx context.Context, req Request) ([]byte, error)
}

// LoadingIndicator brackets every request that goes to the network.
type LoadingIndicator interface {
	Begin()
	End()
}

type noopLoading struct{}

func (noopLoading) Begin() {}
func (noopLoading) End()   {}

// TokenSource supplies the bearer token; an empty string means anonymous.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
