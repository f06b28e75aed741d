package services

import (
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/pipeline"
)

// DashboardQuery is the query state of one dashboard view
type DashboardQuery struct {
	SearchQuery string
	Filters     models.ActiveFilters
	SortOption  models.SortOption
	Page        int
	PageSize    int
}

// DashboardView is derived entirely from a dataset and a DashboardQuery; it is
// rebuilt on every read and never stored.
type DashboardView struct {
	SearchQuery      string
	Filters          models.ActiveFilters
	SortOption       models.SortOption
	FilteredData     []models.SalesTransaction
	PaginatedData    []models.SalesTransaction
	Pagination       models.PaginationState
	PageWindow       []int
	Totals           models.SalesTotals
	AvailableFilters models.AvailableFilters
	AgeRangeError    string
}

// BuildDashboardView runs the query pipeline over dataset and derives the totals
// and pager state. available should be the filters extracted from dataset.
func BuildDashboardView(dataset []models.SalesTransaction, available models.AvailableFilters, query DashboardQuery) DashboardView {
	result := pipeline.ProcessTransactions(
		dataset,
		query.SearchQuery,
		query.Filters,
		query.SortOption,
		query.Page,
		query.PageSize,
	)

	pagination := models.PaginationState{
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}

	return DashboardView{
		SearchQuery:      query.SearchQuery,
		Filters:          query.Filters.Clone(),
		SortOption:       query.SortOption,
		FilteredData:     result.FilteredData,
		PaginatedData:    result.PaginatedData,
		Pagination:       pagination,
		PageWindow:       pagination.PageWindow(),
		Totals:           pipeline.ComputeTotals(result.FilteredData),
		AvailableFilters: available,
	}
}
