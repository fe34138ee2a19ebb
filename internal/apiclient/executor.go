package apiclient

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/finance_client/internal/apperrors"
)

const (
	// DefaultMaxAttempts is the attempt budget of an Executor.
	DefaultMaxAttempts = 3
	// DefaultBaseDelay is the first retry delay; later retries wait multiples of it.
	DefaultBaseDelay = time.Second
)

// Operation is one attempt of a network call.
type Operation func(ctx context.Context) error

// Executor runs an Operation with bounded retries and linear backoff:
// after failed attempt n it waits baseDelay*n.
type Executor struct {
	maxAttempts int
	baseDelay   time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
	logger      *slog.Logger
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithMaxAttempts sets the attempt budget; values below 1 are treated as 1.
func WithMaxAttempts(n int) ExecutorOption {
	return func(e *Executor) {
		if n < 1 {
			n = 1
		}
		e.maxAttempts = n
	}
}

// WithBaseDelay sets the backoff unit.
func WithBaseDelay(d time.Duration) ExecutorOption {
	return func(e *Executor) { e.baseDelay = d }
}

// WithSleep replaces the wait between attempts, mainly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) ExecutorOption {
	return func(e *Executor) { e.sleep = sleep }
}

// WithExecutorLogger sets the logger used for retry messages.
func WithExecutorLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// NewExecutor creates an Executor with DefaultMaxAttempts and DefaultBaseDelay
// unless overridden.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		sleep:       sleepContext,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs op until it succeeds, fails with a non-retryable error, or the
// attempt budget is spent. The last error is returned unchanged.
// If ctx ends while waiting, ctx.Err() is returned.
func (e *Executor) Execute(ctx context.Context, op Operation) error {
	var err error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if attempt == e.maxAttempts || !Retryable(err) {
			return err
		}

		delay := e.baseDelay * time.Duration(attempt)
		e.logger.Warn("Request attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", e.maxAttempts),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)
		if serr := e.sleep(ctx, delay); serr != nil {
			return serr
		}
	}
	return err
}

// Retryable reports whether err may succeed on another attempt.
// Server error responses and cancellation are final.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *apperrors.APIError
	return !errors.As(err, &apiErr)
}

// IsNetworkError reports whether err is a transport-level failure rather than
// an error response from the server.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		return false
	}
	if errors.Is(err, apperrors.ErrTransport) || errors.Is(err, apperrors.ErrNetwork) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "network") ||
		strings.Contains(msg, "fetch") ||
		strings.Contains(msg, "connection refused")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
