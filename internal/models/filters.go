package models

// Facet identifies one independently toggleable filter dimension
type Facet string

const (
	FacetCustomerRegion  Facet = "customerRegions"
	FacetGender          Facet = "genders"
	FacetProductCategory Facet = "productCategories"
	FacetTag             Facet = "tags"
	FacetPaymentMethod   Facet = "paymentMethods"
)

// DefaultAgeRange is offered when there is no data to derive bounds from
var DefaultAgeRange = AgeRange{Min: 0, Max: 100}

// AgeRange is an inclusive age interval
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age lies within the inclusive range
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

// DateRange is an inclusive calendar interval; bounds use the same formats as transaction dates
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ActiveFilters holds the user's current filter selection.
// An empty accepted set for a facet means the facet does not restrict results.
type ActiveFilters struct {
	CustomerRegions   []string   `json:"customerRegions"`
	Genders           []string   `json:"genders"`
	AgeRange          *AgeRange  `json:"ageRange"`
	ProductCategories []string   `json:"productCategories"`
	Tags              []string   `json:"tags"`
	PaymentMethods    []string   `json:"paymentMethods"`
	DateRange         *DateRange `json:"dateRange"`
}

// NewActiveFilters returns a selection that restricts nothing
func NewActiveFilters() ActiveFilters {
	return ActiveFilters{
		CustomerRegions:   []string{},
		Genders:           []string{},
		ProductCategories: []string{},
		Tags:              []string{},
		PaymentMethods:    []string{},
	}
}

// IsEmpty reports whether no facet or range is active
func (f ActiveFilters) IsEmpty() bool {
	return len(f.CustomerRegions) == 0 &&
		len(f.Genders) == 0 &&
		len(f.ProductCategories) == 0 &&
		len(f.Tags) == 0 &&
		len(f.PaymentMethods) == 0 &&
		f.AgeRange == nil &&
		f.DateRange == nil
}

// Clone returns a deep copy so callers can mutate the result freely
func (f ActiveFilters) Clone() ActiveFilters {
	out := ActiveFilters{
		CustomerRegions:   cloneStrings(f.CustomerRegions),
		Genders:           cloneStrings(f.Genders),
		ProductCategories: cloneStrings(f.ProductCategories),
		Tags:              cloneStrings(f.Tags),
		PaymentMethods:    cloneStrings(f.PaymentMethods),
	}
	if f.AgeRange != nil {
		r := *f.AgeRange
		out.AgeRange = &r
	}
	if f.DateRange != nil {
		r := *f.DateRange
		out.DateRange = &r
	}
	return out
}

// Values returns the accepted set for a facet
func (f ActiveFilters) Values(facet Facet) []string {
	switch facet {
	case FacetCustomerRegion:
		return f.CustomerRegions
	case FacetGender:
		return f.Genders
	case FacetProductCategory:
		return f.ProductCategories
	case FacetTag:
		return f.Tags
	case FacetPaymentMethod:
		return f.PaymentMethods
	default:
		return nil
	}
}

// WithValues returns a copy of f with the accepted set for facet replaced
func (f ActiveFilters) WithValues(facet Facet, values []string) ActiveFilters {
	out := f.Clone()
	values = cloneStrings(values)
	switch facet {
	case FacetCustomerRegion:
		out.CustomerRegions = values
	case FacetGender:
		out.Genders = values
	case FacetProductCategory:
		out.ProductCategories = values
	case FacetTag:
		out.Tags = values
	case FacetPaymentMethod:
		out.PaymentMethods = values
	}
	return out
}

// IsValidFacet checks if the facet name is one of the known facets
func IsValidFacet(facet Facet) bool {
	switch facet {
	case FacetCustomerRegion, FacetGender, FacetProductCategory, FacetTag, FacetPaymentMethod:
		return true
	default:
		return false
	}
}

// AvailableFilters summarizes the distinct facet values present in a dataset
type AvailableFilters struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	PaymentMethods []string `json:"paymentMethods"`
	AgeRange       AgeRange `json:"ageRange"`
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
