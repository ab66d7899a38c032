package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, resp["error"]
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &domain.ValidationError{Msg: "quantity must be greater than zero"}, http.StatusBadRequest},
		{"missing value", &domain.MissingValueError{Column: "name"}, http.StatusBadRequest},
		{"duplicate", &domain.DuplicateError{Column: "username"}, http.StatusConflict},
		{"no matching sales", domain.ErrNoMatchingSales, http.StatusBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"unsupported schema", &domain.UnsupportedSchemaError{Columns: []string{"tier"}}, http.StatusBadRequest},
		{"store not configured", domain.ErrStoreNotConfigured, http.StatusInternalServerError},
		{"missing identifier column", domain.ErrMissingIdentifierColumn, http.StatusInternalServerError},
		{"echo error", echo.NewHTTPError(http.StatusUnsupportedMediaType, "bad content type"), http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if msg == "" {
				t.Fatal("expected an error message in the envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, errors.New("pq: relation sales does not exist"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestHTTPErrorHandler_NamesOffendingColumns(t *testing.T) {
	_, msg := renderError(t, &domain.UnsupportedSchemaError{Columns: []string{"tier", "quota"}})
	for _, col := range []string{"tier", "quota"} {
		if !strings.Contains(msg, col) {
			t.Fatalf("message %q should name column %q", msg, col)
		}
	}

	_, msg = renderError(t, &domain.DuplicateError{Column: "username"})
	if !strings.Contains(msg, "username") {
		t.Fatalf("message %q should name the duplicate column", msg)
	}
}
