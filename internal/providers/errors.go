package providers

import (
	"errors"
	"fmt"
)

// ErrProviderUnavailable reports a nil or unconfigured provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ServerError captures a non-2xx upstream response.
type ServerError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Provider, e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Provider, e.Operation, e.StatusCode)
}

// NetworkError captures connectivity and timeout failures. Timeouts are
// not distinguished from other transport errors; callers treat both the
// same way.
type NetworkError struct {
	Provider  string
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: request failed: %v", e.Provider, e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AsServerError attempts to unwrap an error into a ServerError.
func AsServerError(err error) (*ServerError, bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// UserMessage renders an upstream failure the way screens present it.
func UserMessage(err error) string {
	if se, ok := AsServerError(err); ok {
		return fmt.Sprintf("Server error: %d", se.StatusCode)
	}
	if _, ok := AsNetworkError(err); ok {
		return "Check your connection and try again."
	}
	return "Something went wrong. Try again."
}
