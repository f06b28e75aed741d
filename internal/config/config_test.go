package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SALES_DEFAULT_PAGE_LIMIT", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.NotEmpty(t, cfg.Database.URL)
	assert.Equal(t, 50, cfg.Sales.DefaultPageLimit)
	assert.Equal(t, 1000, cfg.Sales.MaxPageLimit)
	assert.Equal(t, 12, cfg.Sales.DashboardPageSize)
	assert.Equal(t, 5*time.Minute, cfg.Sales.DatasetCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "file::memory:?cache=shared")
	t.Setenv("SALES_DEFAULT_PAGE_LIMIT", "25")
	t.Setenv("DATASET_CACHE_TTL", "30s")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file::memory:?cache=shared", cfg.Database.URL)
	assert.Equal(t, 25, cfg.Sales.DefaultPageLimit)
	assert.Equal(t, 30*time.Second, cfg.Sales.DatasetCacheTTL)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("SALES_MAX_PAGE_LIMIT", "lots")
	t.Setenv("DATASET_CACHE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 1000, cfg.Sales.MaxPageLimit)
	assert.Equal(t, 5*time.Minute, cfg.Sales.DatasetCacheTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing url", func(c *Config) { c.Database.URL = "" }, "DATABASE_URL"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "unsupported DB_DRIVER"},
		{"zero default limit", func(c *Config) { c.Sales.DefaultPageLimit = 0 }, "SALES_DEFAULT_PAGE_LIMIT"},
		{"max below default", func(c *Config) { c.Sales.MaxPageLimit = 10 }, "SALES_MAX_PAGE_LIMIT"},
		{"zero dashboard page size", func(c *Config) { c.Sales.DashboardPageSize = 0 }, "DASHBOARD_PAGE_SIZE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Database: DatabaseConfig{Driver: DriverPostgres, URL: "postgres://x"},
				Sales:    SalesConfig{DefaultPageLimit: 50, MaxPageLimit: 1000, DashboardPageSize: 12},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAddress(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "127.0.0.1", Port: "9000"}}
	assert.Equal(t, "127.0.0.1:9000", cfg.Address())
}
