package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

type stubHealth struct {
	err error
}

func (s stubHealth) HealthCheck(context.Context) error {
	return s.err
}

type ServerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	sales   *service_mocks.MockSalesServiceInterface
	cfg     *config.Config
	handler http.Handler
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:             "127.0.0.1",
			Port:             "0",
			ShutdownTimeout:  time.Second,
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Sales: config.SalesConfig{
			DefaultPageLimit:  50,
			MaxPageLimit:      1000,
			DashboardPageSize: 12,
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}
}

func (s *ServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sales = service_mocks.NewMockSalesServiceInterface(s.ctrl)
	s.cfg = testConfig()
	s.handler = s.build(stubHealth{})
}

func (s *ServerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServerTestSuite) build(health stubHealth) http.Handler {
	reg := prometheus.NewRegistry()
	services.NewPrometheusMetrics(reg)
	return New(s.cfg, Dependencies{Sales: s.sales, Health: health, Registerer: reg, Gatherer: reg}).Handler()
}

func (s *ServerTestSuite) get(handler http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.get(s.handler, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.get(s.build(stubHealth{err: errors.New("down")}), "/health", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *ServerTestSuite) TestSalesRoute() {
	s.sales.EXPECT().GetSalesPage(gomock.Any(), models.SalesQueryFilters{Page: 2, Limit: 10}).
		Return(&models.SalesPage{Transactions: []models.SalesTransaction{}, Page: 2, Limit: 10}, nil)

	rec := s.get(s.handler, "/api/sales?page=2&limit=10", map[string]string{"X-Trace-ID": "abc-123"})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("abc-123", rec.Header().Get("X-Trace-ID"))
	s.Equal("no-store", rec.Header().Get("Cache-Control"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerTestSuite) TestDashboardAndFiltersRoutes() {
	s.sales.EXPECT().QueryDashboard(gomock.Any(), gomock.Any()).
		Return(&services.DashboardView{PaginatedData: []models.SalesTransaction{}}, nil)
	s.sales.EXPECT().GetAvailableFilters(gomock.Any()).
		Return(&models.AvailableFilters{AgeRange: models.DefaultAgeRange}, nil)

	s.Equal(http.StatusOK, s.get(s.handler, "/api/sales/dashboard?sort=quantity", nil).Code)
	s.Equal(http.StatusOK, s.get(s.handler, "/api/sales/filters", nil).Code)
}

func (s *ServerTestSuite) TestUnknownRouteUsesEnvelope() {
	rec := s.get(s.handler, "/api/unknown", map[string]string{"X-Trace-ID": "missing-1"})

	s.Equal(http.StatusNotFound, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(false, body["success"])
	s.Equal("SYSTEM_004", body["code"])
	s.Equal("missing-1", body["trace_id"])
}

func (s *ServerTestSuite) TestMetricsEndpoint() {
	rec := s.get(s.handler, "/metrics", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "sales_dataset_records")
}

func (s *ServerTestSuite) TestMetricsCountErrors() {
	s.get(s.handler, "/api/unknown", nil)

	rec := s.get(s.handler, "/metrics", nil)

	s.Contains(rec.Body.String(), `api_errors_total{code="SYSTEM_004"`)
}

func (s *ServerTestSuite) TestCORSAllowedOrigin() {
	s.sales.EXPECT().GetAvailableFilters(gomock.Any()).Return(&models.AvailableFilters{}, nil)

	rec := s.get(s.handler, "/api/sales/filters", map[string]string{"Origin": "http://localhost:3000"})

	s.Equal("http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func (s *ServerTestSuite) TestRateLimitAppliesToAPI() {
	s.cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}
	handler := s.build(stubHealth{})
	s.sales.EXPECT().GetAvailableFilters(gomock.Any()).Return(&models.AvailableFilters{}, nil).Times(1)

	s.Equal(http.StatusOK, s.get(handler, "/api/sales/filters", nil).Code)
	s.Equal(http.StatusTooManyRequests, s.get(handler, "/api/sales/filters", nil).Code)
	s.Equal(http.StatusOK, s.get(handler, "/health", nil).Code)
}

func (s *ServerTestSuite) TestHTTPServerUsesConfig() {
	s.cfg.Server.ReadTimeout = 3 * time.Second
	srv := New(s.cfg, Dependencies{Sales: s.sales, Health: stubHealth{}}).HTTPServer()

	s.Equal("127.0.0.1:0", srv.Addr)
	s.Equal(3*time.Second, srv.ReadTimeout)
}
