package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/pipeline"
)

// Age range input messages
const (
	MsgAgeNotNumeric  = "Please enter valid numbers"
	MsgAgeMinTooLow   = "Minimum age must be at least %d"
	MsgAgeMaxTooHigh  = "Maximum age must be at most %d"
	MsgAgeMinAboveMax = "Minimum age must be less than or equal to maximum age"
)

// FieldValidationError rejects a single user-entered value
type FieldValidationError struct {
	Field   string
	Message string
}

func (e *FieldValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// DashboardController holds the interactive state of one dashboard session and
// derives its view on demand. Every state change is serialized by mu.
type DashboardController struct {
	mu sync.Mutex

	loader   DatasetLoader
	logger   *slog.Logger
	pageSize int

	dataset   []models.SalesTransaction
	available models.AvailableFilters

	searchQuery string
	filters     models.ActiveFilters
	sortOption  models.SortOption
	page        int
	ageErr      *FieldValidationError
}

// NewDashboardController creates a controller with default state and an empty dataset
func NewDashboardController(loader DatasetLoader, pageSize int, logger *slog.Logger) *DashboardController {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize < 1 {
		pageSize = 12
	}
	return &DashboardController{
		loader:     loader,
		logger:     logger,
		pageSize:   pageSize,
		dataset:    []models.SalesTransaction{},
		available:  pipeline.ExtractAvailableFilters(nil),
		filters:    models.NewActiveFilters(),
		sortOption: models.DefaultSortOption,
		page:       1,
	}
}

// Load fetches the dataset once. A failed load is logged and leaves the dataset empty.
func (c *DashboardController) Load(ctx context.Context) {
	records, err := c.loader.LoadAll(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to load sales data", "error", err)
		records = []models.SalesTransaction{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset = slices.Clone(records)
	if c.dataset == nil {
		c.dataset = []models.SalesTransaction{}
	}
	c.available = pipeline.ExtractAvailableFilters(c.dataset)
}

// SetSearchQuery replaces the search text and returns to the first page
func (c *DashboardController) SetSearchQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.searchQuery = query
	c.page = 1
}

// SetFilters replaces the active filters and returns to the first page
func (c *DashboardController) SetFilters(filters models.ActiveFilters) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = filters.Clone()
	c.page = 1
}

// SetSortOption changes the ordering and returns to the first page
func (c *DashboardController) SetSortOption(option models.SortOption) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sortOption = option
	c.page = 1
}

// SetPage moves to page, treating values below 1 as 1. Pages past the end are
// kept and simply show no rows.
func (c *DashboardController) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.page = max(page, 1)
}

// ClearFilters resets filters and search text. The sort option is kept.
func (c *DashboardController) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = models.NewActiveFilters()
	c.searchQuery = ""
	c.ageErr = nil
	c.page = 1
}

// ToggleFacetValue checks value in facet if absent, otherwise unchecks it
func (c *DashboardController) ToggleFacetValue(facet models.Facet, value string) error {
	if !models.IsValidFacet(facet) {
		return fmt.Errorf("unknown filter facet %q", facet)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.filters.Values(facet)
	var updated []string
	if slices.Contains(current, value) {
		updated = slices.DeleteFunc(slices.Clone(current), func(v string) bool { return v == value })
	} else {
		updated = append(slices.Clone(current), value)
	}

	c.filters = c.filters.WithValues(facet, updated)
	c.page = 1
	return nil
}

// ApplyAgeRangeInput validates the raw min and max age inputs against the
// observed age bounds. Both inputs empty clears the age filter; one empty side
// takes the observed bound. Invalid input leaves the filters unchanged.
func (c *DashboardController) ApplyAgeRangeInput(minInput, maxInput string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ageErr = nil
	minInput = strings.TrimSpace(minInput)
	maxInput = strings.TrimSpace(maxInput)

	if minInput == "" && maxInput == "" {
		c.filters.AgeRange = nil
		c.page = 1
		return nil
	}

	bounds := c.available.AgeRange
	minAge, minErr := parseAgeInput(minInput, bounds.Min)
	maxAge, maxErr := parseAgeInput(maxInput, bounds.Max)

	var verr *FieldValidationError
	switch {
	case minErr != nil || maxErr != nil:
		verr = &FieldValidationError{Field: "ageRange", Message: MsgAgeNotNumeric}
	case minAge < bounds.Min:
		verr = &FieldValidationError{Field: "minAge", Message: fmt.Sprintf(MsgAgeMinTooLow, bounds.Min)}
	case maxAge > bounds.Max:
		verr = &FieldValidationError{Field: "maxAge", Message: fmt.Sprintf(MsgAgeMaxTooHigh, bounds.Max)}
	case minAge > maxAge:
		verr = &FieldValidationError{Field: "ageRange", Message: MsgAgeMinAboveMax}
	}
	if verr != nil {
		c.ageErr = verr
		return verr
	}

	c.filters.AgeRange = &models.AgeRange{Min: minAge, Max: maxAge}
	c.page = 1
	return nil
}

func parseAgeInput(input string, fallback int) (int, error) {
	if input == "" {
		return fallback, nil
	}
	return strconv.Atoi(input)
}

// View derives the current dashboard view from state and dataset
func (c *DashboardController) View() DashboardView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := BuildDashboardView(c.dataset, c.available, DashboardQuery{
		SearchQuery: c.searchQuery,
		Filters:     c.filters,
		SortOption:  c.sortOption,
		Page:        c.page,
		PageSize:    c.pageSize,
	})
	if c.ageErr != nil {
		view.AgeRangeError = c.ageErr.Message
	}
	return view
}
