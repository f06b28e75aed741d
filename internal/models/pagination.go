package models

// PaginationState describes one page of a result sequence. Page is 1-based.
type PaginationState struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// CalculateTotalPages returns ceil(totalItems / pageSize); a non-positive page size yields 0
func CalculateTotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// NewPaginationState builds the pagination metadata for a page of totalItems
func NewPaginationState(page, pageSize, totalItems int) PaginationState {
	return PaginationState{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: CalculateTotalPages(totalItems, pageSize),
	}
}

// HasNext reports whether a page follows the current one
func (p PaginationState) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrevious reports whether a page precedes the current one
func (p PaginationState) HasPrevious() bool {
	return p.Page > 1
}

// PageEllipsis marks a gap in a page-number window
const PageEllipsis = 0

// PageWindow returns the page numbers a pager shows for the current page.
// At most six entries are listed before gaps (PageEllipsis) are introduced.
// Nothing is shown when there is a single page or none.
func (p PaginationState) PageWindow() []int {
	const maxVisible = 6

	total := p.TotalPages
	current := p.Page
	if total <= 1 {
		return []int{}
	}

	pages := make([]int, 0, maxVisible+1)
	switch {
	case total <= maxVisible:
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
	case current <= 3:
		pages = append(pages, 1, 2, 3, 4, PageEllipsis, total)
	case current >= total-2:
		pages = append(pages, 1, PageEllipsis, total-3, total-2, total-1, total)
	default:
		pages = append(pages, 1, PageEllipsis, current-1, current, current+1, PageEllipsis, total)
	}
	return pages
}
