package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lumopress/user-directory/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"permission denied", domain.ErrPermissionDenied, http.StatusForbidden, "permission denied"},
		{"wrapped permission denied", fmt.Errorf("set role: %w", domain.ErrPermissionDenied), http.StatusForbidden, "permission denied"},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound, "account not found"},
		{"profile not found", domain.ErrProfileNotFound, http.StatusNotFound, "profile not found"},
		{"account exists", domain.ErrAccountExists, http.StatusConflict, "account already exists"},
		{"account disabled", domain.ErrAccountDisabled, http.StatusForbidden, "account disabled"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := runErrorHandler(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_InvalidArgumentKeepsMessage(t *testing.T) {
	err := fmt.Errorf("%w: invalid role bogus", domain.ErrInvalidArgument)

	code, msg := runErrorHandler(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != err.Error() {
		t.Fatalf("expected %q, got %q", err.Error(), msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := runErrorHandler(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("adapter detail must not leak, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "missing authentication claims" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
