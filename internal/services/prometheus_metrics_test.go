package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": "list", "status": "success"})
	metrics.IncrementCounter(MetricSalesRequest, map[string]string{"endpoint": "list", "status": "success"})
	metrics.IncrementCounter(MetricDatasetCache, map[string]string{"result": "hit"})
	metrics.IncrementCounter(MetricDatasetCache, map[string]string{})
	metrics.IncrementCounter("unknown", nil)

	metrics.RecordGauge(MetricDatasetSize, 42, nil)
	metrics.AddCounter(MetricImportRows, 10, map[string]string{"outcome": "inserted"})
	metrics.AddCounter(MetricImportRows, 5, map[string]string{"outcome": "inserted"})
	metrics.AddCounter(MetricImportRows, 0, map[string]string{"outcome": "duplicate"})
	metrics.AddCounter(MetricImportRows, -3, map[string]string{"outcome": "inserted"})
	metrics.RecordGauge(MetricImportRows, 7, map[string]string{"outcome": "inserted"})

	metrics.RecordProcessingTime(MetricDatasetLoad, 20*time.Millisecond)
	metrics.RecordProcessingTime("dashboard", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.salesRequests.WithLabelValues("list", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.datasetCache.WithLabelValues("hit")))
	assert.Equal(t, 42.0, testutil.ToFloat64(metrics.datasetSize))
	assert.Equal(t, 15.0, testutil.ToFloat64(metrics.importRows.WithLabelValues("inserted")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.importRows), "zero adds create no series")
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.datasetLoadSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.salesDuration))
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
