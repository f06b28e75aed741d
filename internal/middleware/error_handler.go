package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/logging"
	"sales-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler renders every error that reaches Echo in the standard envelope
type ErrorHandler struct {
	logger    *slog.Logger
	apiErrors *prometheus.CounterVec
}

// NewErrorHandler creates the handler and registers api_errors_total on reg.
// A nil reg leaves the counter unregistered.
func NewErrorHandler(logger *slog.Logger, reg prometheus.Registerer) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger,
		apiErrors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// Handle satisfies echo.HTTPErrorHandler
func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = logging.TraceID(req.Context())
	}
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := h.toResponse(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(req.Context(), level, "request failed",
		"trace_id", traceID,
		"error_code", response.Code,
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"error", err.Error(),
	)

	h.apiErrors.WithLabelValues(response.Code, c.Path(), strconv.Itoa(status)).Inc()

	var sendErr error
	if req.Method == http.MethodHead {
		sendErr = c.NoContent(status)
	} else {
		sendErr = c.JSON(status, response)
	}
	if sendErr != nil {
		h.logger.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func (h *ErrorHandler) toResponse(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return errors.NewErrorResponse(
			statusErrorCode(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)),
		), httpErr.Code
	}

	if fieldErrors, ok := validation.FieldErrors(err); ok {
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

func statusErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.ValidationGeneral
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusMethodNotAllowed:
		return errors.SystemMethodNotAllowed
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemInternalError
	}
}
