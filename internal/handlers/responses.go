package handlers

import (
	"net/http"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/logging"
	"sales-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError, SendValidationError or
// SendSystemError so every error body uses the same envelope.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context, falling back to the
// request context
func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok && traceID != "" {
		return traceID
	}
	return logging.TraceID(c.Request().Context())
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendValidationError reports validator failures field by field
func SendValidationError(c echo.Context, err error) error {
	fieldErrors, ok := validation.FieldErrors(err)
	if !ok {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fieldErrors, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendSystemError hides err behind a generic system error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
