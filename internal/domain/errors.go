package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
)

// Verification-flow errors. Each wraps ErrBadRequest so the generic HTTP
// mapping still applies while callers and tests can discriminate the cause.
var (
	ErrInvalidCode   = fmt.Errorf("invalid verification code: %w", ErrBadRequest)
	ErrCodeExpired   = fmt.Errorf("verification code expired: %w", ErrBadRequest)
	ErrAccountExists = fmt.Errorf("account with this email already exists: %w", ErrBadRequest)
	// ErrNoPassword is returned when a Google-only account attempts password
	// sign-in. Deliberately distinct from a credentials mismatch.
	ErrNoPassword = fmt.Errorf("account has no password, sign in with Google: %w", ErrBadRequest)
)
