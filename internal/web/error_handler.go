package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/workling/portal/internal/core/domain"
	"github.com/workling/portal/internal/gateway"
)

// errorResponse is the canonical error envelope for JSON errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes remote failures through with the server's own message.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if wantsJSON(c) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}
		setFlash(c, flashError, msg)
		_ = c.Redirect(http.StatusSeeOther, "/")
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Failures reported by the marketplace keep their status and message.
	var re *gateway.RemoteError
	if errors.As(err, &re) {
		return re.Status, re.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrNoSession), errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "login required"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "not authorized"
	case errors.Is(err, domain.ErrForbiddenRole):
		return http.StatusForbidden, domain.ErrForbiddenRole.Error()
	case errors.Is(err, domain.ErrEmptyJobForm):
		return http.StatusBadRequest, domain.ErrEmptyJobForm.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
