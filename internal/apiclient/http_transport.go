package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/finance_client/internal/apperrors"
	"github.com/google/uuid"
)

// HTTPTransport is a Transport over net/http with bearer authentication.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// NewHTTPTransport creates a transport for baseURL (e.g. "http://localhost:8080/api").
func NewHTTPTransport(baseURL string, timeout time.Duration, tokens TokenSource, logger *slog.Logger) *HTTPTransport {
	if logger == nil {
		logger = slog.Default()
	}
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}
	return &HTTPTransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, req Request) ([]byte, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, t.baseURL+req.Path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", method, req.Path, err)
	}
	requestID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if token := t.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	logger := t.logger.With(
		slog.String("request_id", requestID),
		slog.String("method", method),
		slog.String("path", req.Path),
	)
	start := time.Now()

	resp, err := t.client.Do(httpReq)
	if err != nil {
		logger.Warn("Request failed before a response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %w", apperrors.ErrTransport, err)
	}
	logger.Debug("Request completed",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp, data)
	}
	return data, nil
}

// errorFromResponse builds an APIError from the body's "error" or "message"
// field, falling back to the status text.
func errorFromResponse(resp *http.Response, data []byte) error {
	msg := ""
	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") || json.Valid(data) {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(data, &body); err == nil {
			msg = body.Error
			if msg == "" {
				msg = body.Message
			}
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &apperrors.APIError{Status: resp.StatusCode, Message: msg}
}
