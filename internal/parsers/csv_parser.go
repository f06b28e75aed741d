package parsers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sales-dashboard/internal/models"
)

// salesFieldCount is the number of columns in a sales export row
const salesFieldCount = 26

// ParseStats counts what happened to the data rows of one file
type ParseStats struct {
	Rows      int
	Parsed    int
	Malformed int
	Short     int
	Long      int
}

// Dropped is the number of rows that did not produce a transaction
func (s ParseStats) Dropped() int {
	return s.Malformed + s.Short + s.Long
}

// ParseSalesCSV reads a sales export. The first row is a header and is
// discarded. Spaces before a quoted field are ignored. Rows with fewer than 26
// columns, with data beyond column 26, or with broken quoting are logged and
// skipped; unparseable numbers become zero. Only a failing reader is an error.
func ParseSalesCSV(r io.Reader) ([]models.SalesTransaction, ParseStats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var stats ParseStats
	transactions := []models.SalesTransaction{}

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return transactions, stats, nil
		}
		if !isRowError(err) {
			return nil, stats, fmt.Errorf("failed to read CSV header: %w", err)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if !isRowError(err) {
				return nil, stats, fmt.Errorf("failed to read CSV record: %w", err)
			}
			stats.Rows++
			stats.Malformed++
			slog.Warn("skipping malformed CSV row", "error", err)
			continue
		}

		stats.Rows++
		if len(record) < salesFieldCount {
			stats.Short++
			line, _ := reader.FieldPos(0)
			slog.Warn("skipping short CSV row",
				"line", line,
				"fields", len(record),
				"expected", salesFieldCount,
			)
			continue
		}
		if hasExtraData(record) {
			stats.Long++
			line, _ := reader.FieldPos(0)
			slog.Warn("skipping CSV row with extra columns",
				"line", line,
				"fields", len(record),
				"expected", salesFieldCount,
			)
			continue
		}

		transactions = append(transactions, parseRecord(record))
		stats.Parsed++
	}

	return transactions, stats, nil
}

// hasExtraData reports whether record carries non-blank values past the last
// sales column. Trailing empty columns are tolerated.
func hasExtraData(record []string) bool {
	for _, value := range record[salesFieldCount:] {
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

func isRowError(err error) bool {
	var parseErr *csv.ParseError
	return errors.As(err, &parseErr)
}

func parseRecord(record []string) models.SalesTransaction {
	field := func(i int) string {
		return strings.TrimSpace(record[i])
	}

	return models.SalesTransaction{
		TransactionID:      parseInt64(field(0)),
		Date:               field(1),
		CustomerID:         field(2),
		CustomerName:       field(3),
		PhoneNumber:        field(4),
		Gender:             field(5),
		Age:                parseInt(field(6)),
		CustomerRegion:     field(7),
		CustomerType:       field(8),
		ProductID:          field(9),
		ProductName:        field(10),
		Brand:              field(11),
		ProductCategory:    field(12),
		Tags:               models.ParseTagList(field(13)),
		Quantity:           parseInt(field(14)),
		PricePerUnit:       parseFloat(field(15)),
		DiscountPercentage: parseFloat(field(16)),
		TotalAmount:        parseFloat(field(17)),
		FinalAmount:        parseFloat(field(18)),
		PaymentMethod:      field(19),
		OrderStatus:        field(20),
		DeliveryType:       field(21),
		StoreID:            field(22),
		StoreLocation:      field(23),
		SalespersonID:      field(24),
		EmployeeName:       field(25),
	}
}

func parseInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func parseInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}
