// Package apierror carries the error taxonomy shared by services and
// handlers. Every fallible domain operation returns either a plain
// wrapped error (infrastructure failure) or an *APIError whose Kind
// maps one-to-one onto an HTTP status at the boundary.
package apierror

import (
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindNotAllowed   Kind = "NOT_ALLOWED"
	KindFailed       Kind = "FAILED"
	KindConflict     Kind = "CONFLICT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindExpired      Kind = "EXPIRED"
	KindInternal     Kind = "INTERNAL"
)

type APIError struct {
	Kind       Kind   `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is match two APIErrors by kind, so callers can test
// against a bare sentinel built with the same kind.
func (e *APIError) Is(target error) bool {
	other, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func New(kind Kind, message string, details string, status int) *APIError {
	return &APIError{Kind: kind, Message: message, Details: details, HTTPStatus: status}
}

func Validation(message string) *APIError {
	return New(KindValidation, message, "", http.StatusBadRequest)
}

func NotFound(message string) *APIError {
	return New(KindNotFound, message, "", http.StatusNotFound)
}

func NotAllowed(message string) *APIError {
	return New(KindNotAllowed, message, "", http.StatusForbidden)
}

func Failed(message string) *APIError {
	return New(KindFailed, message, "", http.StatusInternalServerError)
}

func Conflict(message string) *APIError {
	return New(KindConflict, message, "", http.StatusConflict)
}

func Unauthorized(message string) *APIError {
	return New(KindUnauthorized, message, "", http.StatusUnauthorized)
}

// Expired marks a token whose signature verified but whose TTL has
// elapsed. The auth middleware treats this as "no authentication", not
// as a hard failure.
func Expired(message string) *APIError {
	return New(KindExpired, message, "", http.StatusUnauthorized)
}

// KindOf reports the kind of err if it is an *APIError, or KindInternal
// otherwise.
func KindOf(err error) Kind {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Kind
	}
	return KindInternal
}
