package repositories

import (
	"context"

	"sales-dashboard/internal/models"
)

// SalesTransactionRepositoryInterface defines the contract for sales transaction storage
type SalesTransactionRepositoryInterface interface {
	FindPage(ctx context.Context, filters models.SalesQueryFilters) ([]models.SalesTransaction, int64, error)
	FindAll(ctx context.Context) ([]models.SalesTransaction, error)
	CreateBatch(ctx context.Context, transactions []models.SalesTransaction, batchSize int) (int64, error)
	Count(ctx context.Context) (int64, error)
}
