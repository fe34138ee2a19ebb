package apperrors

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the session is missing, invalid or expired.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNetwork is matched by every NetworkError.
var ErrNetwork = errors.New("network error")

// ErrTransport marks a failure to deliver a request at all (no response received).
// Transports wrap their low-level errors with it.
var ErrTransport = errors.New("transport failure")

// NetworkMessage is the uniform user-facing message for unreachable servers.
const NetworkMessage = "network error: unable to reach the server"

// APIError is a well-formed error response returned by the server.
// Its message is surfaced to the user verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrNotFound) match on status.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401
	case ErrNotFound:
		return e.Status == 404
	case ErrValidation:
		return e.Status == 400 || e.Status == 422
	}
	return false
}

// NetworkError replaces a transport failure once retries are exhausted.
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return NetworkMessage
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// NewNetworkError wraps cause into a NetworkError.
func NewNetworkError(cause error) error {
	return &NetworkError{Cause: cause}
}

var unauthorizedPattern = regexp.MustCompile(`(?i)unauthorized|401`)

// IsUnauthorized reports whether err signals an invalid session: a 401 response
// or a message mentioning it.
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	return unauthorizedPattern.MatchString(err.Error())
}

// Validationf wraps a formatted message in ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
