package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/database"
	"sales-dashboard/internal/logging"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/parsers"
	"sales-dashboard/internal/repositories"
	"sales-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"
)

func main() {
	var (
		file  = flag.String("file", "", "path to a sales CSV export")
		fake  = flag.Int("fake", 0, "generate this many synthetic transactions instead of reading a file")
		seed  = flag.Uint64("seed", 0, "seed for -fake; 0 picks a random seed")
		batch = flag.Int("batch", 0, "rows per insert batch (defaults to IMPORT_BATCH_SIZE)")
	)
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.Logger)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if (*file == "") == (*fake <= 0) {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -fake must be given")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *file, *fake, *seed, *batch); err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, file string, fake int, seed uint64, batch int) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := repositories.NewSalesTransactionRepository(db.DB)

	var records []models.SalesTransaction
	if file != "" {
		records, err = readFile(file, logger)
	} else {
		records, err = generate(ctx, repo, fake, seed)
	}
	if err != nil {
		return err
	}

	if batch < 1 {
		batch = cfg.Sales.ImportBatchSize
	}
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	importer := services.NewSalesImportService(repo, nil, metrics, batch, logger)

	bar := progressbar.Default(int64(len(records)), "importing")
	result, err := importer.Import(ctx, records, func(processed int) {
		_ = bar.Add(processed)
	})
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Printf("received %d, inserted %d, duplicates %d, invalid %d in %s\n",
		result.Received, result.Inserted, result.Skipped, result.Invalid, result.Duration)
	return nil
}

func readFile(path string, logger *slog.Logger) ([]models.SalesTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, stats, err := parsers.ParseSalesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	logger.Info("parsed sales CSV",
		"file", path,
		"rows", stats.Rows,
		"parsed", stats.Parsed,
		"dropped", stats.Dropped(),
	)
	return records, nil
}

func generate(ctx context.Context, repo repositories.SalesTransactionRepositoryInterface, count int, seed uint64) ([]models.SalesTransaction, error) {
	existing, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count existing transactions: %w", err)
	}
	return services.NewSalesGenerator(seed).Generate(count, existing+1), nil
}
