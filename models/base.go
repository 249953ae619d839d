package models

// PaginationQuery carries the paging parameters accepted by list endpoints
type PaginationQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// PaginationResult describes one page of a list response
type PaginationResult struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
}

// NewPaginationResult creates a new pagination result object
func NewPaginationResult(total int64, page, pageSize int) PaginationResult {
	return PaginationResult{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
