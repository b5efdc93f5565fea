package models

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// NewPagination summarizes a result window. An empty result set has zero
// total pages and neither neighbor, whatever page was requested.
func NewPagination(page, perPage, total int) Pagination {
	totalPages := 0
	if total > 0 && perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: perPage,
		HasNext:      page < totalPages,
		HasPrev:      page > 1 && totalPages > 0,
	}
}
