package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hisabkitab/cli/internal/common"
)

// Error is a non-2xx backend response, narrowed at the gateway boundary so
// feature code never inspects raw bodies. Detail carries the backend's
// structured message when present, else a generic fallback.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Detail)
}

// Unwrap maps well-known statuses to the shared sentinels so errors.Is works
// across package boundaries.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Detail returns the backend's detail message for err, or fallback when err
// carries none.
func Detail(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// newError builds an *Error from a response status and raw body. FastAPI-style
// backends put a human-readable string under "detail"; validation failures put
// a structure there instead, which is kept verbatim as compact JSON.
func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Detail: http.StatusText(status)}

	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return e
	}

	var s string
	if err := json.Unmarshal(envelope.Detail, &s); err == nil {
		e.Detail = s
		return e
	}
	e.Detail = strings.TrimSpace(string(envelope.Detail))
	return e
}
