// Package common contains shared constants and sentinel errors used across
// Voclara components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential hasher errors.
	ErrPasswordEncoding = errors.New("password cannot be encoded")
	ErrMalformedHash    = errors.New("malformed password hash")

	// Token codec errors. Verification failures stay distinguishable here so
	// the HTTP layer can log the exact kind before collapsing them into one
	// generic rejection.
	ErrInvalidClaim     = errors.New("invalid subject claim")
	ErrTokenExpired     = errors.New("token expired")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed   = errors.New("malformed token")

	// Request gate errors.
	ErrMissingCredentials = errors.New("missing credentials")
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrInactiveUser       = errors.New("inactive user")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
