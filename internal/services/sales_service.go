package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/pipeline"
	"sales-dashboard/internal/repositories"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const (
	datasetCacheKey           = "sales:dataset"
	defaultDatasetLoadTimeout = 30 * time.Second
)

var (
	ErrInvalidSortOption = errors.New("invalid sort option")
	ErrInvalidPage       = errors.New("page must be at least 1")
	ErrInvalidPageSize   = errors.New("page size must be at least 1")
)

// datasetEntry is the cached full dataset with its derived filter options
type datasetEntry struct {
	records   []models.SalesTransaction
	available models.AvailableFilters
}

// SalesService serves paged store reads and dashboard queries over a cached dataset
type SalesService struct {
	repo    repositories.SalesTransactionRepositoryInterface
	metrics MetricsRecorderInterface
	cfg     config.SalesConfig
	cache   *cache.Cache
	loads   singleflight.Group
	breaker *StoreBreaker
	logger  *slog.Logger
}

// NewSalesService creates a new sales service
func NewSalesService(
	repo repositories.SalesTransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	cfg config.SalesConfig,
	logger *slog.Logger,
) SalesServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesService{
		repo:    repo,
		metrics: metrics,
		cfg:     cfg,
		cache:   cache.New(cfg.DatasetCacheTTL, 2*cfg.DatasetCacheTTL),
		breaker: NewStoreBreaker(BreakerConfig{
			MaxFailures:  cfg.StoreMaxFailures,
			ResetTimeout: cfg.StoreRetryAfter,
		}),
		logger: logger,
	}
}

// GetSalesPage applies the default page and limit, caps the limit, and fetches
// the page plus the matching total from the store
func (s *SalesService) GetSalesPage(ctx context.Context, filters models.SalesQueryFilters) (*models.SalesPage, error) {
	start := time.Now()
	const endpoint = "sales_page"

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = s.cfg.DefaultPageLimit
	}
	if s.cfg.MaxPageLimit > 0 && filters.Limit > s.cfg.MaxPageLimit {
		filters.Limit = s.cfg.MaxPageLimit
	}

	transactions, total, err := s.repo.FindPage(ctx, filters)
	s.metrics.RecordProcessingTime(endpoint, time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": endpoint, "status": "error"})
		s.logger.ErrorContext(ctx, "failed to fetch sales page",
			"page", filters.Page,
			"limit", filters.Limit,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch sales page: %w", err)
	}
	s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": endpoint, "status": "success"})

	return &models.SalesPage{
		Transactions: transactions,
		Total:        total,
		Page:         filters.Page,
		Limit:        filters.Limit,
		TotalPages:   models.CalculateTotalPages(int(total), filters.Limit),
	}, nil
}

// dataset returns the cached dataset entry, loading it from the store on a miss.
// Concurrent misses share a single store read. The read runs detached from the
// caller, bounded by the load timeout: a caller that goes away stops waiting
// but neither aborts the shared read nor counts against the store breaker.
func (s *SalesService) dataset(ctx context.Context) (*datasetEntry, error) {
	if cached, ok := s.cache.Get(datasetCacheKey); ok {
		s.metrics.IncrementCounter(MetricDatasetCache, map[string]string{"result": "hit"})
		return cached.(*datasetEntry), nil
	}
	s.metrics.IncrementCounter(MetricDatasetCache, map[string]string{"result": "miss"})

	loadCtx := context.WithoutCancel(ctx)
	results := s.loads.DoChan(datasetCacheKey, func() (interface{}, error) {
		return s.loadDataset(loadCtx)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to load sales dataset: %w", ctx.Err())
	case res := <-results:
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to load sales dataset", "error", res.Err)
			return nil, fmt.Errorf("failed to load sales dataset: %w", res.Err)
		}
		return res.Val.(*datasetEntry), nil
	}
}

func (s *SalesService) loadDataset(ctx context.Context) (*datasetEntry, error) {
	if !s.breaker.Allow() {
		return nil, ErrStoreUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout())
	defer cancel()

	start := time.Now()
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		// ctx is detached from every caller, so a cancellation or deadline
		// here is the store's own timeout and counts as a failure
		s.breaker.RecordFailure()
		if s.breaker.State() == BreakerOpen {
			s.logger.WarnContext(ctx, "sales store breaker open", "retry_after", s.breaker.config.ResetTimeout)
		}
		return nil, err
	}
	s.breaker.RecordSuccess()
	s.metrics.RecordProcessingTime(MetricDatasetLoad, time.Since(start))
	s.metrics.RecordGauge(MetricDatasetSize, float64(len(records)), nil)

	entry := &datasetEntry{
		records:   records,
		available: pipeline.ExtractAvailableFilters(records),
	}
	s.cache.SetDefault(datasetCacheKey, entry)

	s.logger.InfoContext(ctx, "sales dataset loaded",
		"records", len(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entry, nil
}

func (s *SalesService) loadTimeout() time.Duration {
	if s.cfg.DatasetLoadTimeout > 0 {
		return s.cfg.DatasetLoadTimeout
	}
	return defaultDatasetLoadTimeout
}

// LoadAll returns the full dataset. Callers must not modify the returned slice.
func (s *SalesService) LoadAll(ctx context.Context) ([]models.SalesTransaction, error) {
	entry, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return entry.records, nil
}

// InvalidateCache drops the cached dataset
func (s *SalesService) InvalidateCache() {
	s.cache.Delete(datasetCacheKey)
}

// GetAvailableFilters returns the filter options present in the full dataset
func (s *SalesService) GetAvailableFilters(ctx context.Context) (*models.AvailableFilters, error) {
	entry, err := s.dataset(ctx)
	if err != nil {
		s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": "filters", "status": "error"})
		return nil, err
	}
	s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": "filters", "status": "success"})

	available := entry.available
	return &available, nil
}

// QueryDashboard validates the query and evaluates it against the cached dataset
func (s *SalesService) QueryDashboard(ctx context.Context, query DashboardQuery) (*DashboardView, error) {
	start := time.Now()
	const endpoint = "dashboard"

	if query.SortOption == "" {
		query.SortOption = models.DefaultSortOption
	}
	if !query.SortOption.IsValid() {
		return nil, ErrInvalidSortOption
	}
	if query.Page < 1 {
		return nil, ErrInvalidPage
	}
	if query.PageSize == 0 {
		query.PageSize = s.cfg.DashboardPageSize
	}
	if query.PageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	if s.cfg.MaxPageLimit > 0 && query.PageSize > s.cfg.MaxPageLimit {
		query.PageSize = s.cfg.MaxPageLimit
	}

	entry, err := s.dataset(ctx)
	if err != nil {
		s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": endpoint, "status": "error"})
		return nil, err
	}

	view := BuildDashboardView(entry.records, entry.available, query)

	s.metrics.RecordProcessingTime(endpoint, time.Since(start))
	s.metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": endpoint, "status": "success"})
	s.logger.DebugContext(ctx, "dashboard query evaluated",
		"search", query.SearchQuery,
		"sort", query.SortOption,
		"page", query.Page,
		"matched", view.Pagination.TotalItems,
	)

	return &view, nil
}
