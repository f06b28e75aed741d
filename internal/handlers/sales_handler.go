package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"sales-dashboard/internal/dto"
	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// SalesHandler serves the read-only sales endpoints
type SalesHandler struct {
	sales        services.SalesServiceInterface
	defaultLimit int
	pageSize     int
	logger       *slog.Logger
}

// NewSalesHandler creates a new sales handler. defaultLimit applies to the
// listing and pageSize to the dashboard when the request omits them.
func NewSalesHandler(sales services.SalesServiceInterface, defaultLimit, pageSize int, logger *slog.Logger) *SalesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if defaultLimit < 1 {
		defaultLimit = 50
	}
	if pageSize < 1 {
		pageSize = 12
	}
	return &SalesHandler{
		sales:        sales,
		defaultLimit: defaultLimit,
		pageSize:     pageSize,
		logger:       logger,
	}
}

// ListSales returns one page of transactions in ascending transaction ID order
// @Summary List sales transactions
// @Tags Sales
// @Produce json
// @Param page query int false "Page number (>= 1)" default(1)
// @Param limit query int false "Page size, capped by configuration" default(50)
// @Param customerRegion query string false "Exact customer region"
// @Param productCategory query string false "Exact product category"
// @Param orderStatus query string false "Exact order status"
// @Success 200 {object} dto.SalesListResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / VALIDATION_003 - Invalid page or limit"
// @Failure 500 {object} errors.ErrorResponse "SALES_001 - Failed to fetch sales data"
// @Router /api/sales [get]
func (h *SalesHandler) ListSales(c echo.Context) error {
	noStore(c)

	params := dto.SalesListParams{Page: 1, Limit: h.defaultLimit}
	err := echo.QueryParamsBinder(c).
		Int("page", &params.Page).
		Int("limit", &params.Limit).
		String("customerRegion", &params.CustomerRegion).
		String("productCategory", &params.ProductCategory).
		String("orderStatus", &params.OrderStatus).
		BindError()
	if err != nil {
		return sendBindingError(c, err)
	}

	if err := c.Validate(params); err != nil {
		return SendValidationError(c, err)
	}

	page, err := h.sales.GetSalesPage(c.Request().Context(), params.ToFilters())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "error fetching sales data", "error", err)
		return SendError(c, errors.SalesFetchFailed, errors.WithMessage(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewSalesListResponse(page))
}

// Dashboard runs search, filter, sort and pagination over the full dataset
// @Summary Query the sales dashboard
// @Tags Sales
// @Produce json
// @Param search query string false "Case-insensitive customer name or phone substring"
// @Param customerRegions query []string false "Accepted regions (repeat the parameter for several)"
// @Param genders query []string false "Accepted genders"
// @Param productCategories query []string false "Accepted categories"
// @Param tags query []string false "Accepted tags (any match)"
// @Param paymentMethods query []string false "Accepted payment methods"
// @Param minAge query int false "Inclusive minimum age"
// @Param maxAge query int false "Inclusive maximum age"
// @Param startDate query string false "Inclusive start date"
// @Param endDate query string false "Inclusive end date"
// @Param sort query string false "Ordering" Enums(customer-name-asc, date-desc, quantity)
// @Param page query int false "Page number (>= 1)" default(1)
// @Param pageSize query int false "Rows per page" default(12)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* - Invalid query"
// @Failure 500 {object} errors.ErrorResponse "SALES_002 - Dataset unavailable"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store temporarily unavailable"
// @Router /api/sales/dashboard [get]
func (h *SalesHandler) Dashboard(c echo.Context) error {
	noStore(c)

	params := dto.DashboardParams{Page: 1, PageSize: h.pageSize}
	binder := echo.QueryParamsBinder(c).
		String("search", &params.Search).
		Strings("customerRegions", &params.CustomerRegions).
		Strings("genders", &params.Genders).
		Strings("productCategories", &params.ProductCategories).
		Strings("tags", &params.Tags).
		Strings("paymentMethods", &params.PaymentMethods).
		String("startDate", &params.StartDate).
		String("endDate", &params.EndDate).
		String("sort", &params.Sort).
		Int("page", &params.Page).
		Int("pageSize", &params.PageSize)
	params.MinAge = bindOptionalInt(c, binder, "minAge")
	params.MaxAge = bindOptionalInt(c, binder, "maxAge")
	if err := binder.BindError(); err != nil {
		return sendBindingError(c, err)
	}

	if err := c.Validate(params); err != nil {
		return SendValidationError(c, err)
	}

	filters, qerr := buildActiveFilters(params)
	if qerr != nil {
		return qerr.send(c)
	}

	view, err := h.sales.QueryDashboard(c.Request().Context(), services.DashboardQuery{
		SearchQuery: params.Search,
		Filters:     filters,
		SortOption:  models.SortOption(params.Sort),
		Page:        params.Page,
		PageSize:    params.PageSize,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidSortOption):
			return SendError(c, errors.ValidationInvalidSort)
		case stderrors.Is(err, services.ErrInvalidPage), stderrors.Is(err, services.ErrInvalidPageSize):
			return SendError(c, errors.ValidationOutOfRange, errors.WithMessage(err.Error()))
		case stderrors.Is(err, services.ErrStoreUnavailable):
			return SendError(c, errors.SystemServiceUnavailable)
		}
		h.logger.ErrorContext(c.Request().Context(), "error querying sales dashboard", "error", err)
		return SendError(c, errors.SalesDatasetUnavailable, errors.WithMessage(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.DashboardResponse{
		Success:          true,
		Data:             view.PaginatedData,
		Pagination:       view.Pagination,
		PageWindow:       view.PageWindow,
		Search:           view.SearchQuery,
		Sort:             view.SortOption,
		Filters:          view.Filters,
		Totals:           dto.NewTotalsResponse(view.Totals),
		AvailableFilters: view.AvailableFilters,
	})
}

// Filters returns the filter options present in the full dataset
// @Summary List filter options
// @Tags Sales
// @Produce json
// @Success 200 {object} dto.FiltersResponse
// @Failure 500 {object} errors.ErrorResponse "SALES_003 - Filter options unavailable"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store temporarily unavailable"
// @Router /api/sales/filters [get]
func (h *SalesHandler) Filters(c echo.Context) error {
	noStore(c)

	available, err := h.sales.GetAvailableFilters(c.Request().Context())
	if stderrors.Is(err, services.ErrStoreUnavailable) {
		return SendError(c, errors.SystemServiceUnavailable)
	}
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "error loading filter options", "error", err)
		return SendError(c, errors.SalesFiltersUnavailable, errors.WithMessage(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewFiltersResponse(*available))
}

func noStore(c echo.Context) {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
}

// bindOptionalInt binds name only when the request carries a non-empty value
func bindOptionalInt(c echo.Context, binder *echo.ValueBinder, name string) *int {
	if c.QueryParam(name) == "" {
		return nil
	}
	value := new(int)
	binder.Int(name, value)
	return value
}

func sendBindingError(c echo.Context, err error) error {
	var bindErr *echo.BindingError
	if stderrors.As(err, &bindErr) {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails(fmt.Sprintf("%s: must be a whole number", bindErr.Field)))
	}
	return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
}

// queryError is a rejected combination of otherwise valid parameters
type queryError struct {
	code    errors.ErrorCode
	message string
}

func (e *queryError) send(c echo.Context) error {
	return SendError(c, e.code, errors.WithMessage(e.message))
}

// buildActiveFilters converts dashboard params to pipeline filters. A missing
// age bound leaves that side open; dates must be given as a pair.
func buildActiveFilters(params dto.DashboardParams) (models.ActiveFilters, *queryError) {
	filters := models.NewActiveFilters().
		WithValues(models.FacetCustomerRegion, facetValues(params.CustomerRegions)).
		WithValues(models.FacetGender, facetValues(params.Genders)).
		WithValues(models.FacetProductCategory, facetValues(params.ProductCategories)).
		WithValues(models.FacetTag, facetValues(params.Tags)).
		WithValues(models.FacetPaymentMethod, facetValues(params.PaymentMethods))

	if params.MinAge != nil || params.MaxAge != nil {
		ageRange := models.AgeRange{Min: 0, Max: math.MaxInt}
		if params.MinAge != nil {
			ageRange.Min = *params.MinAge
		}
		if params.MaxAge != nil {
			ageRange.Max = *params.MaxAge
		}
		if ageRange.Min > ageRange.Max {
			return filters, &queryError{code: errors.ValidationOutOfRange, message: services.MsgAgeMinAboveMax}
		}
		filters.AgeRange = &ageRange
	}

	if params.StartDate != "" || params.EndDate != "" {
		if params.StartDate == "" || params.EndDate == "" {
			return filters, &queryError{code: errors.ValidationInvalidDate, message: "startDate and endDate must be provided together"}
		}
		filters.DateRange = &models.DateRange{Start: params.StartDate, End: params.EndDate}
	}

	return filters, nil
}

// facetValues keeps repeated parameter values verbatim, dropping blanks and
// duplicates. Values are never split: facet values such as "Delhi, North"
// contain commas and must round-trip from /api/sales/filters unchanged.
func facetValues(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
