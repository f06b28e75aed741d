package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/repositories/repository_mocks"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SalesImportServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockSalesTransactionRepositoryInterface
	sales   *service_mocks.MockSalesServiceInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	service services.SalesImportServiceInterface
}

func TestSalesImportServiceSuite(t *testing.T) {
	suite.Run(t, new(SalesImportServiceTestSuite))
}

func (s *SalesImportServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockSalesTransactionRepositoryInterface(s.ctrl)
	s.sales = service_mocks.NewMockSalesServiceInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().AddCounter(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	s.service = services.NewSalesImportService(s.repo, s.sales, s.metrics, 2, nil)
}

func (s *SalesImportServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func importRows(ids ...int64) []models.SalesTransaction {
	out := make([]models.SalesTransaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.SalesTransaction{TransactionID: id, Quantity: 1})
	}
	return out
}

func (s *SalesImportServiceTestSuite) TestImport_BatchesAndInvalidatesCache() {
	rows := importRows(1, 2, 3, 4, 5)

	gomock.InOrder(
		s.repo.EXPECT().CreateBatch(gomock.Any(), rows[0:2], 2).Return(int64(2), nil),
		s.repo.EXPECT().CreateBatch(gomock.Any(), rows[2:4], 2).Return(int64(1), nil),
		s.repo.EXPECT().CreateBatch(gomock.Any(), rows[4:5], 2).Return(int64(1), nil),
	)
	s.sales.EXPECT().InvalidateCache().Times(1)

	var progress []int
	result, err := s.service.Import(context.Background(), rows, func(n int) { progress = append(progress, n) })

	s.NoError(err)
	s.Equal(5, result.Received)
	s.Equal(int64(4), result.Inserted)
	s.Equal(int64(1), result.Skipped)
	s.Equal(3, result.Batches)
	s.Equal([]int{2, 2, 1}, progress)
}

func (s *SalesImportServiceTestSuite) TestImport_SkipsInvalidRows() {
	rows := []models.SalesTransaction{
		{TransactionID: 0},
		{TransactionID: 2, Quantity: -1},
		{TransactionID: 3, Quantity: 1},
	}

	s.repo.EXPECT().CreateBatch(gomock.Any(), rows[2:3], 2).Return(int64(1), nil)
	s.sales.EXPECT().InvalidateCache()

	result, err := s.service.Import(context.Background(), rows, nil)

	s.NoError(err)
	s.Equal(2, result.Invalid)
	s.Equal(int64(1), result.Inserted)
}

func (s *SalesImportServiceTestSuite) TestImport_NothingInsertedKeepsCache() {
	rows := importRows(1)
	s.repo.EXPECT().CreateBatch(gomock.Any(), rows, 2).Return(int64(0), nil)

	result, err := s.service.Import(context.Background(), rows, nil)

	s.NoError(err)
	s.Equal(int64(1), result.Skipped)
}

func (s *SalesImportServiceTestSuite) TestImport_StoreErrorStops() {
	rows := importRows(1, 2, 3)
	storeErr := errors.New("disk full")
	s.repo.EXPECT().CreateBatch(gomock.Any(), rows[0:2], 2).Return(int64(0), storeErr)

	result, err := s.service.Import(context.Background(), rows, nil)

	s.ErrorIs(err, storeErr)
	s.Zero(result.Batches)
}

func (s *SalesImportServiceTestSuite) TestImport_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.Import(ctx, importRows(1, 2), nil)

	s.ErrorIs(err, context.Canceled)
}

func TestImport_CountsRowsByOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repository_mocks.NewMockSalesTransactionRepositoryInterface(ctrl)
	repo.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), 2).Return(int64(1), nil).Times(2)

	reg := prometheus.NewRegistry()
	service := services.NewSalesImportService(repo, nil, services.NewPrometheusMetrics(reg), 2, nil)

	rows := append(importRows(1, 2, 3), models.SalesTransaction{TransactionID: 0})
	_, err := service.Import(context.Background(), rows, nil)
	require.NoError(t, err)

	expected := `
# HELP sales_import_rows_total Rows seen by the bulk importer by outcome
# TYPE sales_import_rows_total counter
sales_import_rows_total{outcome="duplicate"} 1
sales_import_rows_total{outcome="inserted"} 2
sales_import_rows_total{outcome="invalid"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "sales_import_rows_total"))
}
