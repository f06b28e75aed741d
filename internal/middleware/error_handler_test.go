package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	reg     *prometheus.Registry
	handler *ErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.reg = prometheus.NewRegistry()
	s.handler = NewErrorHandler(nil, s.reg)
}

func (s *ErrorHandlerTestSuite) context(method, target, traceID string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(method, target, nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	return c, rec
}

func (s *ErrorHandlerTestSuite) body(rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestHTTPErrorKeepsStatusAndMessage() {
	c, rec := s.context(http.MethodGet, "/api/nope", "trace-404")

	s.handler.Handle(echo.NewHTTPError(http.StatusNotFound, "no route for /api/nope"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.body(rec)
	s.Equal("SYSTEM_004", body["code"])
	s.Equal("Resource not found", body["error"])
	s.Equal("no route for /api/nope", body["message"])
	s.Equal("trace-404", body["trace_id"])
	s.Equal(false, body["success"])
}

func (s *ErrorHandlerTestSuite) TestUnknownErrorIsHidden() {
	c, rec := s.context(http.MethodGet, "/api/sales", "trace-500")

	s.handler.Handle(errors.New("pq: relation does not exist"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	s.Equal("SYSTEM_001", s.body(rec)["code"])
	s.NotContains(rec.Body.String(), "relation does not exist")
}

func (s *ErrorHandlerTestSuite) TestTraceIDFallbacks() {
	c, rec := s.context(http.MethodGet, "/", "")
	s.handler.Handle(errors.New("boom"), c)
	s.Equal("unknown", s.body(rec)["trace_id"])

	c, rec = s.context(http.MethodGet, "/", "")
	_ = RequestID()(func(c echo.Context) error {
		c.Set(TraceIDContextKey, nil)
		s.handler.Handle(errors.New("boom"), c)
		return nil
	})(c)
	s.NotEqual("unknown", s.body(rec)["trace_id"])
	s.NotEmpty(s.body(rec)["trace_id"])
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	c, rec := s.context(http.MethodGet, "/", "")
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler.Handle(errors.New("late"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *ErrorHandlerTestSuite) TestStatusMapping() {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusNotFound, "SYSTEM_004"},
		{http.StatusMethodNotAllowed, "SYSTEM_005"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusTeapot, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(http.StatusText(tt.status), func() {
			c, rec := s.context(http.MethodGet, "/", "t")
			s.handler.Handle(echo.NewHTTPError(tt.status), c)

			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, s.body(rec)["code"])
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	c, rec := s.context(http.MethodGet, "/api/sales/dashboard", "t")

	type query struct {
		Sort string `query:"sort" validate:"sort_option"`
	}
	s.handler.Handle(validation.NewValidator().Struct(query{Sort: "price"}), c)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.body(rec)["code"])
	s.Contains(rec.Body.String(), "sort: must be one of")
}

func (s *ErrorHandlerTestSuite) TestHeadRequestHasNoBody() {
	c, rec := s.context(http.MethodHead, "/missing", "")

	s.handler.Handle(echo.ErrNotFound, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	for i := 0; i < 2; i++ {
		c, _ := s.context(http.MethodGet, "/", "t")
		s.handler.Handle(echo.ErrNotFound, c)
	}

	s.Equal(2.0, testutil.ToFloat64(s.handler.apiErrors.WithLabelValues("SYSTEM_004", "", "404")))
	count, err := testutil.GatherAndCount(s.reg, "api_errors_total")
	s.NoError(err)
	s.Equal(1, count)
}

func TestNewErrorHandler_NilRegistererDoesNotPanic(t *testing.T) {
	h1 := NewErrorHandler(nil, nil)
	h2 := NewErrorHandler(nil, nil)
	if h1 == nil || h2 == nil {
		t.Fatal("expected handlers")
	}
}
