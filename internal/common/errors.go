// Package common defines shared sentinel errors used across the Summarize
// data layer. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// The record exists but its dependent blob does not.
	ErrUnavailable = errors.New("unavailable")

	// Session / gating errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Input errors.
	ErrValidation  = errors.New("validation failed")
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrEmailInUse  = errors.New("email already in use")
)
