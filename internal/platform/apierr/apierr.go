package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the domain error taxonomy returned to API callers. Remote-call
// failures from trusted backing services map into it and are returned without
// retry.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NotFound: the referenced aggregate does not exist.
func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf(format, args...))
}

// BadRequest: a domain rule was violated by the caller.
func BadRequest(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, "bad_request", fmt.Errorf(format, args...))
}

// Internal: malformed or missing data from a trusted backing service. This
// signals a corrupted upstream record, not a caller mistake.
func Internal(format string, args ...interface{}) *Error {
	return New(http.StatusInternalServerError, "internal_error", fmt.Errorf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(http.StatusUnauthorized, "unauthorized", fmt.Errorf(format, args...))
}

// FromStatusCode maps a backing-service HTTP status into the taxonomy.
// Anything unexpected is internal: the backing services are trusted, so a
// status outside the contract is their defect, not the caller's.
func FromStatusCode(status int, err error) *Error {
	switch status {
	case http.StatusNotFound:
		return New(http.StatusNotFound, "not_found", err)
	case http.StatusBadRequest:
		return New(http.StatusBadRequest, "bad_request", err)
	case http.StatusUnauthorized:
		return New(http.StatusUnauthorized, "unauthorized", err)
	default:
		return New(http.StatusInternalServerError, "internal_error", err)
	}
}

// From returns err as *Error, wrapping unknown errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", err)
}
