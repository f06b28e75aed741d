package database

import (
	"testing"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite store with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// each pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			URL:            ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// SeedTransactions inserts rows directly, bypassing the repository
func SeedTransactions(t *testing.T, db *DB, rows []models.SalesTransaction) {
	t.Helper()

	if len(rows) == 0 {
		return
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("failed to seed sales transactions: %v", err)
	}
}

// CleanupTestDB removes every stored transaction
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM sales_transactions").Error; err != nil {
		t.Logf("failed to cleanup table sales_transactions: %v", err)
	}
}
