package domain

import "errors"

var (
	// ErrCredentialDecode means a persisted credential could not be parsed.
	// Callers purge the credential and treat the session as anonymous; the
	// failure is never surfaced to the user.
	ErrCredentialDecode = errors.New("credential cannot be decoded")

	// ErrInvalidCredentials is a rejected login or signup. It propagates to
	// the caller without committing any session state.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthExpired means the backend rejected the credential on an
	// authenticated call. The credential is purged globally and the caller is
	// sent back to sign-in.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrNoCredential means no credential is persisted for the session.
	ErrNoCredential = errors.New("no stored credential")

	// ErrSessionRequired means an operation needs an authenticated session.
	ErrSessionRequired = errors.New("authentication required")

	ErrNotFound     = errors.New("resource not found")
	ErrCartEmpty    = errors.New("cart is empty")
	ErrBackend      = errors.New("backend request failed")
	ErrInvalidInput = errors.New("invalid input")
)
