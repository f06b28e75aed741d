package models

// SortOption selects the ordering of the filtered result set
type SortOption string

const (
	SortDateDesc        SortOption = "date-desc"
	SortQuantityDesc    SortOption = "quantity"
	SortCustomerNameAsc SortOption = "customer-name-asc"

	// DefaultSortOption is the ordering a fresh dashboard starts with
	DefaultSortOption = SortCustomerNameAsc
)

var sortOptionLabels = map[SortOption]string{
	SortCustomerNameAsc: "Customer Name (A-Z)",
	SortDateDesc:        "Date (Newest First)",
	SortQuantityDesc:    "Quantity",
}

// SortOptions lists the selectable orderings in display order
func SortOptions() []SortOption {
	return []SortOption{SortCustomerNameAsc, SortDateDesc, SortQuantityDesc}
}

// IsValid checks if the sort option is one of the known orderings
func (s SortOption) IsValid() bool {
	_, ok := sortOptionLabels[s]
	return ok
}

// Label returns the human-readable name of the ordering
func (s SortOption) Label() string {
	if label, ok := sortOptionLabels[s]; ok {
		return label
	}
	return sortOptionLabels[SortDateDesc]
}
