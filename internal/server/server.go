package server

import (
	"context"
	"log/slog"
	"net/http"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/handlers"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the collaborators the HTTP layer needs
type Dependencies struct {
	Sales      services.SalesServiceInterface
	Health     handlers.HealthChecker
	// Registerer and Gatherer back api_errors_total and /metrics
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// Server owns the Echo instance and the per-IP rate limiter
type Server struct {
	echo        *echo.Echo
	rateLimiter *middleware.RateLimiter
	cfg         *config.Config
	logger      *slog.Logger
}

// New wires middleware and routes
func New(cfg *config.Config, deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(logger, deps.Registerer).Handle

	s := &Server{
		echo:        e,
		rateLimiter: middleware.NewRateLimiter(float64(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst),
		cfg:         cfg,
		logger:      logger,
	}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
		MaxAge:        86400,
	}))

	s.registerRoutes(deps, gatherer)
	return s
}

func (s *Server) registerRoutes(deps Dependencies, gatherer prometheus.Gatherer) {
	health := handlers.NewHealthCheckHandler(deps.Health)
	sales := handlers.NewSalesHandler(
		deps.Sales,
		s.cfg.Sales.DefaultPageLimit,
		s.cfg.Sales.DashboardPageSize,
		s.logger,
	)

	s.echo.GET("/health", health.HealthCheck)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := s.echo.Group("/api", s.rateLimiter.Middleware())
	api.GET("/sales", sales.ListSales)
	api.GET("/sales/dashboard", sales.Dashboard)
	api.GET("/sales/filters", sales.Filters)
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.echo
}

// HTTPServer builds the listener with the configured timeouts
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      s.echo,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// RunBackground starts housekeeping goroutines that stop with ctx
func (s *Server) RunBackground(ctx context.Context) {
	go s.rateLimiter.Run(ctx)
}
