package services

import (
	"context"
	"time"

	"sales-dashboard/internal/models"
)

// SalesServiceInterface provides read access to stored sales transactions
type SalesServiceInterface interface {
	// GetSalesPage returns one page of stored transactions in ascending ID order
	GetSalesPage(ctx context.Context, filters models.SalesQueryFilters) (*models.SalesPage, error)
	// LoadAll returns the full dataset, served from the in-process cache when fresh
	LoadAll(ctx context.Context) ([]models.SalesTransaction, error)
	// InvalidateCache drops the cached dataset so the next read hits the store
	InvalidateCache()
	GetAvailableFilters(ctx context.Context) (*models.AvailableFilters, error)
	// QueryDashboard runs search, filter, sort and paginate over the full dataset
	QueryDashboard(ctx context.Context, query DashboardQuery) (*DashboardView, error)
}

// DatasetLoader fetches the full transaction dataset once
type DatasetLoader interface {
	LoadAll(ctx context.Context) ([]models.SalesTransaction, error)
}

// SalesImportServiceInterface bulk loads transactions into the store
type SalesImportServiceInterface interface {
	Import(ctx context.Context, transactions []models.SalesTransaction, onBatch func(processed int)) (*ImportResult, error)
}

// SalesGeneratorInterface produces synthetic transactions
type SalesGeneratorInterface interface {
	Generate(count int, firstID int64) []models.SalesTransaction
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
}
