package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/photographerlagbe/marketplace-api/internal/core/domain"
)

// Stable machine-readable error kinds carried on every error response.
const (
	KindValidation         = "validation_error"
	KindDuplicateIdentity  = "duplicate_identity"
	KindAlreadyExists      = "already_exists"
	KindInvalidCredentials = "invalid_credentials"
	KindUnauthenticated    = "unauthenticated"
	KindForbidden          = "forbidden"
	KindNotFound           = "not_found"
	KindTimeout            = "timeout"
	KindRateLimited        = "rate_limited"
	KindInternal           = "internal_error"
)

// errorResponse is the canonical error envelope for all API errors: a stable
// kind, a human message, and field-level failures when applicable.
type errorResponse struct {
	Error   string                `json:"error"`
	Message string                `json:"message"`
	Fields  []domain.FieldFailure `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error", "message", "fields"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Field-level validation failures keep their detail.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Error:   KindValidation,
			Message: "validation failed",
			Fields:  ve.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, middleware gates).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Error:   kindForStatus(he.Code),
			Message: fmt.Sprintf("%v", he.Message),
		}
	}

	// Known domain errors → deterministic HTTP codes. The inactive case is
	// deliberately indistinguishable from nonexistent.
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, errorResponse{Error: KindDuplicateIdentity, Message: "email already registered"}
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusConflict, errorResponse{Error: KindAlreadyExists, Message: "photographer profile already exists"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: KindInvalidCredentials, Message: "invalid credentials"}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, errorResponse{Error: KindUnauthenticated, Message: "invalid token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: KindForbidden, Message: "not allowed"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: KindNotFound, Message: "user not found"}
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, errorResponse{Error: KindNotFound, Message: "photographer not found"}
	case errors.Is(err, domain.ErrPortfolioItemNotFound):
		return http.StatusNotFound, errorResponse{Error: KindNotFound, Message: "portfolio item not found"}
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, errorResponse{Error: KindTimeout, Message: "operation timed out, retry later"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: KindInternal, Message: "internal server error"}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthenticated
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindAlreadyExists
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindInternal
	}
}
