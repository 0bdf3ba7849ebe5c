// Package entity defines the request and response shapes of the contact API.
package entity

// DataResponse wraps a successful payload as {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse is the body of mutations that return no payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse wraps any failure as {"errors": ...}. Errors is either a
// plain message or field-level validation details.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

// Paging describes one page of a search result.
type Paging struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
	Size        int `json:"size"`
}

// Pageable is a paginated payload.
type Pageable struct {
	Data   any    `json:"data"`
	Paging Paging `json:"paging"`
}
