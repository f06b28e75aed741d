package repositories

import (
	"context"
	"fmt"

	"sales-dashboard/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultBatchSize = 500

// salesTransactionRepository implements SalesTransactionRepositoryInterface
type salesTransactionRepository struct {
	db *gorm.DB
}

// NewSalesTransactionRepository creates a new sales transaction repository
func NewSalesTransactionRepository(db *gorm.DB) SalesTransactionRepositoryInterface {
	return &salesTransactionRepository{
		db: db,
	}
}

// filtered builds the shared WHERE predicate so page and count cannot drift
func (r *salesTransactionRepository) filtered(ctx context.Context, filters models.SalesQueryFilters) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.SalesTransaction{})

	if filters.CustomerRegion != "" {
		query = query.Where("customer_region = ?", filters.CustomerRegion)
	}
	if filters.ProductCategory != "" {
		query = query.Where("product_category = ?", filters.ProductCategory)
	}
	if filters.OrderStatus != "" {
		query = query.Where("order_status = ?", filters.OrderStatus)
	}

	return query
}

// FindPage retrieves one page in ascending transaction ID order together with the
// number of rows matching the same filters. Both queries run concurrently.
func (r *salesTransactionRepository) FindPage(ctx context.Context, filters models.SalesQueryFilters) ([]models.SalesTransaction, int64, error) {
	var transactions []models.SalesTransaction
	var total int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := r.filtered(gctx, filters).
			Order("transaction_id ASC").
			Offset(filters.Offset()).
			Limit(filters.Limit).
			Find(&transactions).Error; err != nil {
			return fmt.Errorf("failed to get sales transactions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := r.filtered(gctx, filters).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count sales transactions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if transactions == nil {
		transactions = []models.SalesTransaction{}
	}
	return transactions, total, nil
}

// FindAll retrieves every stored transaction ordered by ID
func (r *salesTransactionRepository) FindAll(ctx context.Context) ([]models.SalesTransaction, error) {
	var transactions []models.SalesTransaction
	if err := r.db.WithContext(ctx).
		Order("transaction_id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sales transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.SalesTransaction{}
	}
	return transactions, nil
}

// CreateBatch inserts transactions in batches. Rows whose ID already exists are
// left unchanged; the returned count covers newly inserted rows only.
func (r *salesTransactionRepository) CreateBatch(ctx context.Context, transactions []models.SalesTransaction, batchSize int) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_id"}},
			DoNothing: true,
		}).
		CreateInBatches(&transactions, batchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to create sales transaction batch: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// Count returns the number of stored transactions
func (r *salesTransactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.SalesTransaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count sales transactions: %w", err)
	}
	return total, nil
}
