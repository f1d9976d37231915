package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means no usable HTTP response was received at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized corresponds to HTTP 401 from any endpoint.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is a non-2xx reply from the backend. Message holds the
// human-readable text extracted from the response body, or the endpoint's
// deterministic default when the server supplied none.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Unwrap lets callers match 401 replies with errors.Is(err, ErrUnauthorized).
func (e *ServerError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// UserMessage converts any error produced by this package into the single
// string shown to the user. Transport-level failures collapse into a generic
// message; server-provided text is passed through.
func UserMessage(err error) string {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Error()
	}
	if err != nil && !errors.Is(err, ErrUnavailable) {
		return err.Error()
	}
	return "An error occurred"
}

// withDefault fills in the endpoint's fallback message on a ServerError that
// arrived without one. The error chain is preserved.
func withDefault(err error, fallback string) error {
	var se *ServerError
	if errors.As(err, &se) && se.Message == "" {
		se.Message = fallback
	}
	return err
}
