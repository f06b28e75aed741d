package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/repositories"
)

// ImportResult summarizes one bulk load
type ImportResult struct {
	Received int
	Invalid  int
	Inserted int64
	Skipped  int64
	Batches  int
	Duration time.Duration
}

// SalesImportService writes validated transactions to the store in batches
type SalesImportService struct {
	repo      repositories.SalesTransactionRepositoryInterface
	sales     SalesServiceInterface
	metrics   MetricsRecorderInterface
	batchSize int
	logger    *slog.Logger
}

// NewSalesImportService creates a new import service. sales may be nil when no
// dataset cache needs invalidating.
func NewSalesImportService(
	repo repositories.SalesTransactionRepositoryInterface,
	sales SalesServiceInterface,
	metrics MetricsRecorderInterface,
	batchSize int,
	logger *slog.Logger,
) SalesImportServiceInterface {
	if batchSize < 1 {
		batchSize = 500
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SalesImportService{
		repo:      repo,
		sales:     sales,
		metrics:   metrics,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Import validates every transaction, drops invalid ones, and inserts the rest.
// onBatch, when set, receives the number of rows handled after each batch.
func (s *SalesImportService) Import(ctx context.Context, transactions []models.SalesTransaction, onBatch func(processed int)) (*ImportResult, error) {
	start := time.Now()
	result := &ImportResult{Received: len(transactions)}

	valid := make([]models.SalesTransaction, 0, len(transactions))
	for i := range transactions {
		if err := transactions[i].Validate(); err != nil {
			result.Invalid++
			s.logger.WarnContext(ctx, "skipping invalid transaction",
				"transaction_id", transactions[i].TransactionID,
				"error", err,
			)
			continue
		}
		valid = append(valid, transactions[i])
	}
	if result.Invalid > 0 {
		s.metrics.AddCounter(MetricImportRows, float64(result.Invalid), map[string]string{"outcome": "invalid"})
		if onBatch != nil {
			onBatch(result.Invalid)
		}
	}

	for offset := 0; offset < len(valid); offset += s.batchSize {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("import cancelled after %d batches: %w", result.Batches, err)
		}

		end := min(offset+s.batchSize, len(valid))
		batch := valid[offset:end]

		batchStart := time.Now()
		inserted, err := s.repo.CreateBatch(ctx, batch, s.batchSize)
		s.metrics.RecordProcessingTime(MetricImportBatches, time.Since(batchStart))
		if err != nil {
			s.metrics.AddCounter(MetricImportRows, float64(len(batch)), map[string]string{"outcome": "failed"})
			return result, fmt.Errorf("failed to import batch starting at row %d: %w", offset, err)
		}

		skipped := int64(len(batch)) - inserted
		result.Inserted += inserted
		result.Skipped += skipped
		result.Batches++
		s.metrics.AddCounter(MetricImportRows, float64(inserted), map[string]string{"outcome": "inserted"})
		s.metrics.AddCounter(MetricImportRows, float64(skipped), map[string]string{"outcome": "duplicate"})

		if onBatch != nil {
			onBatch(len(batch))
		}
	}

	if s.sales != nil && result.Inserted > 0 {
		s.sales.InvalidateCache()
	}

	result.Duration = time.Since(start)
	s.logger.InfoContext(ctx, "sales import completed",
		"received", result.Received,
		"inserted", result.Inserted,
		"duplicates", result.Skipped,
		"invalid", result.Invalid,
		"batches", result.Batches,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}
