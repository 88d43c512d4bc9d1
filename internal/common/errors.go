// Package common defines shared constants and sentinel errors used across
// Messagely layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request payload could not be bound or failed validation.
	ErrorBadRequest = errors.New("bad request")

	// Auth errors (absent, malformed, forged or expired token).
	// Never surfaced to a client: the authentication layer swallows it.
	ErrInvalidToken = errors.New("invalid token")
)
