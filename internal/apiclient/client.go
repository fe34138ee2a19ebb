package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/SscSPs/finance_client/internal/apperrors"
	"github.com/SscSPs/finance_client/internal/cache"
	"github.com/go-playground/validator/v10"
)

// Client performs API calls through the cache and the retrying executor.
// Reads are served from the cache while fresh; any successful write clears it.
type Client struct {
	transport Transport
	cache     *cache.TTLCache
	executor  *Executor
	loading   LoadingIndicator
	validate  *validator.Validate
	logger    *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLoadingIndicator sets the scope entered around network attempts.
func WithLoadingIndicator(l LoadingIndicator) ClientOption {
	return func(c *Client) { c.loading = l }
}

// WithClientLogger sets the client logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client. A nil cache disables response caching.
func NewClient(transport Transport, responses *cache.TTLCache, executor *Executor, opts ...ClientOption) *Client {
	if executor == nil {
		executor = NewExecutor()
	}
	v := validator.New()
	// Request DTOs carry gin-style "binding" tags so one tag set serves both sides.
	v.SetTagName("binding")

	c := &Client{
		transport: transport,
		cache:     responses,
		executor:  executor,
		loading:   noopLoading{},
		validate:  v,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs a cached GET and decodes the body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, Request{Method: http.MethodGet, Path: path}, out, true)
}

// Refresh performs a GET that skips the cache lookup but still stores the result.
func (c *Client) Refresh(ctx context.Context, path string, out any) error {
	return c.do(ctx, Request{Method: http.MethodGet, Path: path}, out, false)
}

// Post sends body with POST.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPost, path, body, out)
}

// Put sends body with PUT.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.send(ctx, http.MethodPut, path, body, out)
}

// Delete sends a DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.send(ctx, http.MethodDelete, path, nil, out)
}

// InvalidateCache drops every cached response.
func (c *Client) InvalidateCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	req := Request{Method: method, Path: path}
	if body != nil {
		if err := c.validateBody(body); err != nil {
			return err
		}
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body for %s %s: %w", method, path, err)
		}
		req.Body = data
	}
	return c.do(ctx, req, out, false)
}

func (c *Client) do(ctx context.Context, req Request, out any, useCache bool) error {
	key := ""
	if req.IsRead() && c.cache != nil {
		key = cache.Key(http.MethodGet, req.Path)
		if useCache {
			if data, ok := c.cache.Get(key); ok {
				return decode(data, out)
			}
		}
	}

	c.loading.Begin()
	defer c.loading.End()

	var data []byte
	err := c.executor.Execute(ctx, func(ctx context.Context) error {
		var gen uint64
		if key != "" {
			gen = c.cache.Generation()
		}
		body, err := c.transport.Do(ctx, req)
		if err != nil {
			return err
		}
		if key != "" {
			// A write that cleared the cache meanwhile makes this body stale.
			c.cache.SetIfGeneration(key, body, gen)
		} else if !req.IsRead() && c.cache != nil {
			c.cache.Clear()
		}
		data = body
		return nil
	})
	if err != nil {
		if IsNetworkError(err) && !errors.Is(err, context.Canceled) {
			c.logger.Error("Server unreachable",
				slog.String("method", req.Method),
				slog.String("path", req.Path),
				slog.String("error", err.Error()),
			)
			return apperrors.NewNetworkError(err)
		}
		return err
	}
	return decode(data, out)
}

func (c *Client) validateBody(body any) error {
	v := reflect.ValueOf(body)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	if err := c.validate.Struct(body); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	return nil
}

func decode(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
