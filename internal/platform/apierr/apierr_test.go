package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err        *Error
		wantStatus int
		wantCode   string
	}{
		{NotFound("cart %s not found", "c-1"), http.StatusNotFound, "not_found"},
		{BadRequest("piece must be positive"), http.StatusBadRequest, "bad_request"},
		{Internal("upstream sent garbage"), http.StatusInternalServerError, "internal_error"},
		{Unauthorized("no token"), http.StatusUnauthorized, "unauthorized"},
	}
	for _, tc := range cases {
		if tc.err.Status != tc.wantStatus || tc.err.Code != tc.wantCode {
			t.Fatalf("constructor: want=%d/%s got=%d/%s", tc.wantStatus, tc.wantCode, tc.err.Status, tc.err.Code)
		}
		if tc.err.Error() == "" {
			t.Fatalf("error message: want non-empty for %s", tc.wantCode)
		}
	}
}

func TestFromStatusCode(t *testing.T) {
	cause := errors.New("boom")
	cases := []struct {
		status     int
		wantStatus int
	}{
		{http.StatusNotFound, http.StatusNotFound},
		{http.StatusBadRequest, http.StatusBadRequest},
		{http.StatusUnauthorized, http.StatusUnauthorized},
		{http.StatusBadGateway, http.StatusInternalServerError},
		{http.StatusTeapot, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := FromStatusCode(tc.status, cause)
		if got.Status != tc.wantStatus {
			t.Fatalf("FromStatusCode(%d): want=%d got=%d", tc.status, tc.wantStatus, got.Status)
		}
		if !errors.Is(got, cause) {
			t.Fatalf("FromStatusCode(%d): want cause preserved", tc.status)
		}
	}
}

func TestFromPassesThroughAndWraps(t *testing.T) {
	orig := NotFound("unit u-1 not found")
	if got := From(orig); got != orig {
		t.Fatalf("From(*Error): want same value back, got %v", got)
	}

	wrapped := fmt.Errorf("attach: %w", orig)
	if got := From(wrapped); got != orig {
		t.Fatalf("From(wrapped *Error): want the inner *Error, got %v", got)
	}

	plain := errors.New("boom")
	got := From(plain)
	if got.Status != http.StatusInternalServerError || got.Code != "internal_error" {
		t.Fatalf("From(plain): want internal, got %d/%s", got.Status, got.Code)
	}

	if From(nil) != nil {
		t.Fatalf("From(nil): want nil")
	}
}
