// Package common defines shared constants and sentinel errors used across
// client and server layers of PinVault. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorValidation is wrapped with a human readable detail, e.g.
	// fmt.Errorf("%w: filename is empty", common.ErrorValidation).
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSession = errors.New("invalid session")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// ErrInvalidPin covers every content-access failure: wrong PIN, a payload
	// that does not authenticate, or a payload sealed under a stale key.
	ErrInvalidPin = errors.New("invalid PIN")

	// ErrStorageTimeout is returned when a storage call exceeds its deadline.
	// The caller may retry; the server never does.
	ErrStorageTimeout = errors.New("storage timeout")
)
