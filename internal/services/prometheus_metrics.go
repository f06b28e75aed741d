package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricSalesRequest  = "sales_request"
	MetricDatasetCache  = "dataset_cache"
	MetricDatasetLoad   = "dataset_load"
	MetricDatasetSize   = "dataset_size"
	MetricImportRows    = "import_rows"
	MetricImportBatches = "import_batch"
)

type PrometheusMetrics struct {
	salesRequests      *prometheus.CounterVec
	salesDuration      *prometheus.HistogramVec
	datasetCache       *prometheus.CounterVec
	datasetLoadSeconds prometheus.Histogram
	datasetSize        prometheus.Gauge
	importRows         *prometheus.CounterVec
	importBatchSeconds prometheus.Histogram
}

// NewPrometheusMetrics registers the sales metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		salesRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_requests_total",
				Help: "Total number of sales queries by endpoint and outcome",
			},
			[]string{"endpoint", "status"},
		),
		salesDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sales_request_duration_seconds",
				Help:    "Sales query duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		datasetCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_dataset_cache_total",
				Help: "Dataset cache lookups by result",
			},
			[]string{"result"},
		),
		datasetLoadSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_dataset_load_duration_seconds",
				Help:    "Time spent loading the full dataset from the store",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
		),
		datasetSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sales_dataset_records",
				Help: "Number of transactions in the most recently loaded dataset",
			},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_import_rows_total",
				Help: "Rows seen by the bulk importer by outcome",
			},
			[]string{"outcome"},
		),
		importBatchSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sales_import_batch_duration_seconds",
				Help:    "Duration of a single import batch insert",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSalesRequest:
		m.salesRequests.WithLabelValues(tags["endpoint"], tags["status"]).Inc()
	case MetricDatasetCache:
		if result := tags["result"]; result != "" {
			m.datasetCache.WithLabelValues(result).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDatasetLoad:
		m.datasetLoadSeconds.Observe(duration.Seconds())
	case MetricImportBatches:
		m.importBatchSeconds.Observe(duration.Seconds())
	default:
		m.salesDuration.WithLabelValues(name).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricDatasetSize:
		m.datasetSize.Set(value)
	}
}

// AddCounter adds value to a counter; values <= 0 are ignored
func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	if value <= 0 {
		return
	}
	switch name {
	case MetricImportRows:
		if outcome := tags["outcome"]; outcome != "" {
			m.importRows.WithLabelValues(outcome).Add(value)
		}
	}
}
