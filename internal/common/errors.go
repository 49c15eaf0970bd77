// Package common defines shared sentinel errors used across both terminal
// surfaces of the HisabKitab client. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrUnauthorized covers 401/403 backend responses.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable marks transport-level failures (backend unreachable).
	ErrUnavailable = errors.New("server unavailable")

	// ErrNotFound covers 404 backend responses.
	ErrNotFound = errors.New("not found")
)
