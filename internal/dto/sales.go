package dto

import (
	"sales-dashboard/internal/models"
)

// SalesListParams contains the query parameters of the paginated sales listing
type SalesListParams struct {
	Page            int    `query:"page" validate:"min=1"`
	Limit           int    `query:"limit" validate:"min=1"`
	CustomerRegion  string `query:"customerRegion"`
	ProductCategory string `query:"productCategory"`
	OrderStatus     string `query:"orderStatus"`
}

// ToFilters converts the params to repository filters
func (p SalesListParams) ToFilters() models.SalesQueryFilters {
	return models.SalesQueryFilters{
		CustomerRegion:  p.CustomerRegion,
		ProductCategory: p.ProductCategory,
		OrderStatus:     p.OrderStatus,
		Page:            p.Page,
		Limit:           p.Limit,
	}
}

// DashboardParams contains the query parameters of the dashboard endpoint.
// Facet lists take one value per repeated parameter; values are not split.
type DashboardParams struct {
	Search            string   `query:"search"`
	CustomerRegions   []string `query:"customerRegions"`
	Genders           []string `query:"genders"`
	ProductCategories []string `query:"productCategories"`
	Tags              []string `query:"tags"`
	PaymentMethods    []string `query:"paymentMethods"`
	MinAge            *int     `query:"minAge" validate:"omitempty,min=0"`
	MaxAge            *int     `query:"maxAge" validate:"omitempty,min=0"`
	StartDate         string   `query:"startDate" validate:"omitempty,sales_date"`
	EndDate           string   `query:"endDate" validate:"omitempty,sales_date"`
	Sort              string   `query:"sort" validate:"omitempty,sort_option"`
	Page              int      `query:"page" validate:"min=1"`
	PageSize          int      `query:"pageSize" validate:"min=1"`
}

// SalesPagination is the pagination block of the sales listing
type SalesPagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// SalesListResponse is the success body of the sales listing
type SalesListResponse struct {
	Success    bool                      `json:"success"`
	Data       []models.SalesTransaction `json:"data"`
	Pagination SalesPagination           `json:"pagination"`
}

// NewSalesListResponse builds the listing body from a service page
func NewSalesListResponse(page *models.SalesPage) SalesListResponse {
	data := page.Transactions
	if data == nil {
		data = []models.SalesTransaction{}
	}
	return SalesListResponse{
		Success: true,
		Data:    data,
		Pagination: SalesPagination{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	}
}

// TotalsResponse carries running sums; amounts are decimal strings
type TotalsResponse struct {
	RecordCount   int    `json:"recordCount"`
	TotalUnits    int64  `json:"totalUnits"`
	TotalAmount   string `json:"totalAmount"`
	TotalDiscount string `json:"totalDiscount"`
}

// NewTotalsResponse formats totals with two decimal places
func NewTotalsResponse(totals models.SalesTotals) TotalsResponse {
	return TotalsResponse{
		RecordCount:   totals.RecordCount,
		TotalUnits:    totals.TotalUnits,
		TotalAmount:   totals.TotalAmount.StringFixed(2),
		TotalDiscount: totals.TotalDiscount.StringFixed(2),
	}
}

// DashboardResponse is the success body of the dashboard endpoint
type DashboardResponse struct {
	Success          bool                      `json:"success"`
	Data             []models.SalesTransaction `json:"data"`
	Pagination       models.PaginationState    `json:"pagination"`
	PageWindow       []int                     `json:"pageWindow"`
	Search           string                    `json:"search"`
	Sort             models.SortOption         `json:"sort"`
	Filters          models.ActiveFilters      `json:"filters"`
	Totals           TotalsResponse            `json:"totals"`
	AvailableFilters models.AvailableFilters   `json:"availableFilters"`
}

// FiltersResponse is the success body of the filter options endpoint
type FiltersResponse struct {
	Success     bool                    `json:"success"`
	Data        models.AvailableFilters `json:"data"`
	SortOptions []SortOptionItem        `json:"sortOptions"`
}

// SortOptionItem describes one selectable ordering
type SortOptionItem struct {
	Value models.SortOption `json:"value"`
	Label string            `json:"label"`
}

// NewFiltersResponse lists available filters with every sort option
func NewFiltersResponse(available models.AvailableFilters) FiltersResponse {
	options := models.SortOptions()
	items := make([]SortOptionItem, 0, len(options))
	for _, option := range options {
		items = append(items, SortOptionItem{Value: option, Label: option.Label()})
	}
	return FiltersResponse{
		Success:     true,
		Data:        available,
		SortOptions: items,
	}
}
