package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/painless-lms/lms-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
	Hint  string `json:"hint,omitempty"`
}

const pendingHint = "Your account is awaiting administrator approval. Try again once it has been activated."

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP statuses and stable
//     machine-readable codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "code", "hint"}.
//
// Handlers map some errors locally where the status depends on context (the
// login handler returns 401 for a pending account, while the access guard's
// pending failure resolves here as 403); this handler is the safety net for
// everything that propagates.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: codeForStatus(he.Code)}
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "not authenticated", Code: "UNAUTHENTICATED"}
	case errors.Is(err, domain.ErrPendingApproval):
		return http.StatusForbidden, errorResponse{Error: err.Error(), Code: "ACCOUNT_PENDING_APPROVAL", Hint: pendingHint}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden", Code: "FORBIDDEN"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: err.Error(), Code: "INVALID_CREDENTIALS"}
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, errorResponse{Error: err.Error(), Code: "TOO_MANY_ATTEMPTS"}
	case errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "DUPLICATE_ACCOUNT"}
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "INVALID_ROLE"}
	case errors.Is(err, domain.ErrNoFieldsProvided):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Code: "NO_FIELDS_PROVIDED"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error(), Code: "NOT_FOUND"}
	case errors.Is(err, domain.ErrCourseNotFound):
		return http.StatusNotFound, errorResponse{Error: err.Error(), Code: "NOT_FOUND"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	default:
		return ""
	}
}
