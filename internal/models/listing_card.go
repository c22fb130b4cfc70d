package models

// ListingCard is the summary projection returned by search and
// recommendation listings. Image is a data URI of the first visible
// image, or nil when the property has none.
type ListingCard struct {
	ID            int64         `json:"idInmueble"`
	Title         string        `json:"titulo"`
	City          string        `json:"ciudad"`
	Price         float64       `json:"precio"`
	Currency      string        `json:"divisa"`
	OperationType OperationType `json:"tipoOperacion"`
	Image         *string       `json:"imagen"`
}

type PaginationMeta struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalResults    int  `json:"totalResults"`
	ResultsPerPage  int  `json:"resultsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPaginationMeta derives page metadata from a total row count.
func NewPaginationMeta(page, perPage, total int) PaginationMeta {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return PaginationMeta{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalResults:    total,
		ResultsPerPage:  perPage,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1 && total > 0,
	}
}
