package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs configuration/schema errors as operator problems, and unexpected
//     errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, 415 on wrong
	// content type, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Validation-class errors: expected, reported verbatim.
	var (
		validationErr  *domain.ValidationError
		missingValue   *domain.MissingValueError
		duplicate      *domain.DuplicateError
		unsupportedErr *domain.UnsupportedSchemaError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &missingValue):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &duplicate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNoMatchingSales), errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrClientNotFound):
		return http.StatusNotFound, "client not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Schema misconfiguration: blocks account creation only, and the
	// operator needs the column names to fix it.
	if errors.As(err, &unsupportedErr) {
		log.Error().Err(err).Msg("users table has unsupported required columns")
		return http.StatusBadRequest, err.Error()
	}

	// Configuration errors: deployment problems, not user error. The
	// sentinel text is actionable without leaking internals.
	if errors.Is(err, domain.ErrStoreNotConfigured) ||
		errors.Is(err, domain.ErrMissingIdentifierColumn) ||
		errors.Is(err, domain.ErrMissingPasswordColumn) {
		log.Error().Err(err).Msg("configuration error")
		return http.StatusInternalServerError, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
