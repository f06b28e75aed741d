package models

// SalesQueryFilters contains the equality filters and page window for store queries
type SalesQueryFilters struct {
	CustomerRegion  string
	ProductCategory string
	OrderStatus     string
	Page            int
	Limit           int
}

// Offset returns the number of rows preceding the requested page
func (f SalesQueryFilters) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// SalesPage is one page of stored transactions plus the matching total
type SalesPage struct {
	Transactions []SalesTransaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
