// File: internal/query/page.go
package query

// Page translates a 1-based page number into OFFSET/LIMIT. Bounds on page and
// pageSize are enforced by the boundary validator before this is reached.
type Page struct {
	Offset int
	Limit  int
}

func NewPage(page, pageSize int) Page {
	return Page{Offset: (page - 1) * pageSize, Limit: pageSize}
}

// Pagination is the list-response metadata computed from a separately obtained
// total count. TotalPages is 0 for an empty result set, distinguishing it from
// a single-page result.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func NewPagination(page, pageSize, totalItems int) Pagination {
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: (totalItems + pageSize - 1) / pageSize,
		HasNext:    page*pageSize < totalItems,
		HasPrev:    page > 1,
	}
}
