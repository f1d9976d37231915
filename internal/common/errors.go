// Package common defines shared constants and sentinel errors used across
// the medadvisor client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (caught client-side, never sent to the server).
	ErrValidation = errors.New("validation error")

	// ErrInvalidServerResponse marks a structurally valid HTTP reply whose
	// payload does not carry a usable identity or record.
	ErrInvalidServerResponse = errors.New("invalid server response")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
