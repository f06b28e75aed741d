// Package pipeline implements the transaction query stages used by the dashboard:
// search, filter, sort and paginate, plus filter-option extraction and totals.
// Every stage is pure and leaves its input slice untouched.
package pipeline

import (
	"slices"
	"strings"

	"sales-dashboard/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Result is the outcome of a full pipeline run
type Result struct {
	FilteredData  []models.SalesTransaction `json:"filteredData"`
	PaginatedData []models.SalesTransaction `json:"paginatedData"`
	TotalItems    int                       `json:"totalItems"`
	TotalPages    int                       `json:"totalPages"`
}

// Search keeps records whose customer name or phone number contains the query,
// ignoring case. A blank query returns the input unchanged.
func Search(records []models.SalesTransaction, query string) []models.SalesTransaction {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return records
	}

	out := make([]models.SalesTransaction, 0, len(records))
	for i := range records {
		if strings.Contains(strings.ToLower(records[i].CustomerName), term) ||
			strings.Contains(strings.ToLower(records[i].PhoneNumber), term) {
			out = append(out, records[i])
		}
	}
	return out
}

// Filter applies every active facet and range. Facets combine with AND, values
// within a facet with OR, and an empty accepted set does not restrict.
func Filter(records []models.SalesTransaction, filters models.ActiveFilters) []models.SalesTransaction {
	regions := toSet(filters.CustomerRegions)
	genders := toSet(filters.Genders)
	categories := toSet(filters.ProductCategories)
	tags := toSet(filters.Tags)
	payments := toSet(filters.PaymentMethods)

	var bounds *dateBounds
	if filters.DateRange != nil {
		b := parseDateBounds(filters.DateRange.Start, filters.DateRange.End)
		bounds = &b
	}

	out := make([]models.SalesTransaction, 0, len(records))
	for i := range records {
		tx := &records[i]
		if !accepts(regions, tx.CustomerRegion) ||
			!accepts(genders, tx.Gender) ||
			!accepts(categories, tx.ProductCategory) ||
			!accepts(payments, tx.PaymentMethod) {
			continue
		}
		if len(tags) > 0 && !tx.HasAnyTag(tags) {
			continue
		}
		if filters.AgeRange != nil && !filters.AgeRange.Contains(tx.Age) {
			continue
		}
		if bounds != nil && !bounds.contains(tx.Date) {
			continue
		}
		out = append(out, *tx)
	}
	return out
}

// Sort returns a stably ordered copy of records. Unknown options keep input order.
func Sort(records []models.SalesTransaction, option models.SortOption) []models.SalesTransaction {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []models.SalesTransaction{}
	}

	switch option {
	case models.SortDateDesc:
		sortByDateDesc(sorted)
	case models.SortQuantityDesc:
		slices.SortStableFunc(sorted, func(a, b models.SalesTransaction) int {
			return b.Quantity - a.Quantity
		})
	case models.SortCustomerNameAsc:
		// collators keep internal buffers and are not safe for concurrent use
		c := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b models.SalesTransaction) int {
			return c.CompareString(a.CustomerName, b.CustomerName)
		})
	}
	return sorted
}

// sortByDateDesc orders newest first; records with unparseable dates go last
func sortByDateDesc(records []models.SalesTransaction) {
	type keyed struct {
		tx    models.SalesTransaction
		unix  int64
		valid bool
	}

	keys := make([]keyed, len(records))
	for i := range records {
		t, ok := ParseDate(records[i].Date)
		keys[i] = keyed{tx: records[i], unix: t.UnixNano(), valid: ok}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		switch {
		case a.valid && !b.valid:
			return -1
		case !a.valid && b.valid:
			return 1
		case !a.valid && !b.valid:
			return 0
		case a.unix > b.unix:
			return -1
		case a.unix < b.unix:
			return 1
		default:
			return 0
		}
	})

	for i := range keys {
		records[i] = keys[i].tx
	}
}

// Paginate returns the page-th window of pageSize records, clipped to the input.
// Pages below 1 are treated as page 1; a non-positive size yields nothing.
func Paginate(records []models.SalesTransaction, page, pageSize int) []models.SalesTransaction {
	if pageSize <= 0 {
		return []models.SalesTransaction{}
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.SalesTransaction{}
	}
	end := min(start+pageSize, len(records))
	return slices.Clone(records[start:end])
}

// ProcessTransactions runs search, filter, sort and paginate in that order.
// TotalItems and TotalPages describe the filtered sequence before pagination.
func ProcessTransactions(
	all []models.SalesTransaction,
	searchQuery string,
	filters models.ActiveFilters,
	sortOption models.SortOption,
	page, pageSize int,
) Result {
	processed := Search(all, searchQuery)
	processed = Filter(processed, filters)
	processed = Sort(processed, sortOption)

	totalItems := len(processed)
	return Result{
		FilteredData:  processed,
		PaginatedData: Paginate(processed, page, pageSize),
		TotalItems:    totalItems,
		TotalPages:    models.CalculateTotalPages(totalItems, pageSize),
	}
}

// ComputeTotals sums units, amount and discount over records
func ComputeTotals(records []models.SalesTransaction) models.SalesTotals {
	var totals models.SalesTotals
	for i := range records {
		totals.Add(&records[i])
	}
	return totals
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func accepts(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[value]
	return ok
}
