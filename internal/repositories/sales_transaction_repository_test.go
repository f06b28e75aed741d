package repositories

import (
	"context"
	"testing"

	"sales-dashboard/internal/database"
	"sales-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

// SalesTransactionRepositorySuite defines the test suite for SalesTransactionRepository
type SalesTransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SalesTransactionRepositoryInterface
	ctx  context.Context
}

// SetupTest runs before each test in the suite
func (s *SalesTransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSalesTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

// TearDownTest runs after each test in the suite
func (s *SalesTransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestSalesTransactionRepositorySuite runs the test suite
func TestSalesTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SalesTransactionRepositorySuite))
}

func fakeTransactions(ids []int64, region, category, status string) []models.SalesTransaction {
	faker := gofakeit.New(99)
	out := make([]models.SalesTransaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.SalesTransaction{
			TransactionID:   id,
			Date:            "2023-05-10",
			CustomerName:    faker.Name(),
			PhoneNumber:     faker.Phone(),
			Age:             faker.Number(18, 70),
			CustomerRegion:  region,
			ProductCategory: category,
			OrderStatus:     status,
			Tags:            models.StringList{faker.Word()},
			Quantity:        faker.Number(1, 5),
			TotalAmount:     100,
			FinalAmount:     90,
		})
	}
	return out
}

func transactionIDs(records []models.SalesTransaction) []int64 {
	out := make([]int64, len(records))
	for i := range records {
		out[i] = records[i].TransactionID
	}
	return out
}

func (s *SalesTransactionRepositorySuite) seed() {
	rows := fakeTransactions([]int64{5, 3, 9, 1}, "North", "Clothing", "Completed")
	rows = append(rows, fakeTransactions([]int64{4, 2}, "South", "Beauty", "Pending")...)
	rows = append(rows, fakeTransactions([]int64{7}, "North", "Beauty", "Cancelled")...)
	database.SeedTransactions(s.T(), s.db, rows)
}

// FindPage Tests

func (s *SalesTransactionRepositorySuite) TestFindPage_AscendingIDWithTotal() {
	s.seed()

	page, total, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{Page: 1, Limit: 3})

	s.NoError(err)
	s.Equal(int64(7), total)
	s.Equal([]int64{1, 2, 3}, transactionIDs(page))
}

func (s *SalesTransactionRepositorySuite) TestFindPage_SecondPage() {
	s.seed()

	page, total, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{Page: 3, Limit: 3})

	s.NoError(err)
	s.Equal(int64(7), total)
	s.Equal([]int64{9}, transactionIDs(page))
}

func (s *SalesTransactionRepositorySuite) TestFindPage_FiltersApplyToPageAndCount() {
	s.seed()

	page, total, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{
		CustomerRegion: "North",
		Page:           1,
		Limit:          2,
	})

	s.NoError(err)
	s.Equal(int64(5), total)
	s.Equal([]int64{1, 3}, transactionIDs(page))

	page, total, err = s.repo.FindPage(s.ctx, models.SalesQueryFilters{
		CustomerRegion:  "North",
		ProductCategory: "Beauty",
		OrderStatus:     "Cancelled",
		Page:            1,
		Limit:           50,
	})

	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal([]int64{7}, transactionIDs(page))
}

func (s *SalesTransactionRepositorySuite) TestFindPage_OutOfRangeReturnsEmpty() {
	s.seed()

	page, total, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{Page: 10, Limit: 50})

	s.NoError(err)
	s.Equal(int64(7), total)
	s.NotNil(page)
	s.Empty(page)
}

func (s *SalesTransactionRepositorySuite) TestFindPage_RoundTripsTags() {
	database.SeedTransactions(s.T(), s.db, []models.SalesTransaction{
		{TransactionID: 1, Tags: models.StringList{"organic", "skincare"}},
		{TransactionID: 2},
	})

	page, _, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{Page: 1, Limit: 10})

	s.NoError(err)
	s.Require().Len(page, 2)
	s.Equal(models.StringList{"organic", "skincare"}, page[0].Tags)
	s.Equal(models.StringList{}, page[1].Tags)
}

func (s *SalesTransactionRepositorySuite) TestFindPage_StoreFailure() {
	sqlDB, err := s.db.DB.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	page, total, err := s.repo.FindPage(s.ctx, models.SalesQueryFilters{Page: 1, Limit: 10})

	s.Error(err)
	s.Nil(page)
	s.Zero(total)
}

func (s *SalesTransactionRepositorySuite) TestFindPage_CancelledContext() {
	s.seed()
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, _, err := s.repo.FindPage(ctx, models.SalesQueryFilters{Page: 1, Limit: 10})

	s.Error(err)
}

// FindAll Tests

func (s *SalesTransactionRepositorySuite) TestFindAll() {
	s.seed()

	all, err := s.repo.FindAll(s.ctx)

	s.NoError(err)
	s.Equal([]int64{1, 2, 3, 4, 5, 7, 9}, transactionIDs(all))
}

func (s *SalesTransactionRepositorySuite) TestFindAll_Empty() {
	all, err := s.repo.FindAll(s.ctx)

	s.NoError(err)
	s.NotNil(all)
	s.Empty(all)
}

// CreateBatch Tests

func (s *SalesTransactionRepositorySuite) TestCreateBatch_InsertsInBatches() {
	rows := fakeTransactions([]int64{1, 2, 3, 4, 5}, "East", "Electronics", "Completed")

	inserted, err := s.repo.CreateBatch(s.ctx, rows, 2)

	s.NoError(err)
	s.Equal(int64(5), inserted)

	count, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(5), count)
}

func (s *SalesTransactionRepositorySuite) TestCreateBatch_ExistingRowsUnchanged() {
	database.SeedTransactions(s.T(), s.db, []models.SalesTransaction{
		{TransactionID: 1, CustomerName: "Original"},
	})

	rows := []models.SalesTransaction{
		{TransactionID: 1, CustomerName: "Replacement"},
		{TransactionID: 2, CustomerName: "New"},
	}

	inserted, err := s.repo.CreateBatch(s.ctx, rows, 10)

	s.NoError(err)
	s.Equal(int64(1), inserted)

	all, err := s.repo.FindAll(s.ctx)
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Original", all[0].CustomerName)
	s.Equal("New", all[1].CustomerName)
}

func (s *SalesTransactionRepositorySuite) TestCreateBatch_Empty() {
	inserted, err := s.repo.CreateBatch(s.ctx, nil, 10)

	s.NoError(err)
	s.Zero(inserted)
}

func (s *SalesTransactionRepositorySuite) TestCreateBatch_DefaultBatchSize() {
	rows := fakeTransactions([]int64{11, 12}, "West", "Beauty", "Completed")

	inserted, err := s.repo.CreateBatch(s.ctx, rows, 0)

	s.NoError(err)
	s.Equal(int64(2), inserted)
}
