// Package page slices ordered sequences into fixed-size pages.
package page

import "errors"

// ErrInvalidPerPage is returned when the page size precondition is
// violated. This marks a programming error at the call boundary, not a
// runtime condition to recover from.
var ErrInvalidPerPage = errors.New("per-page size must be positive")

// Page is one fixed-size slice of a sequence plus bounds metadata.
//
// Number is 1-indexed. An out-of-range request yields empty Items while
// TotalPages and TotalItems still report the true totals, so a caller can
// detect and correct.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Paginate slices items into the requested page.
//
// perPage must be positive; anything else returns ErrInvalidPerPage before
// any slicing happens. Concatenating pages 1..TotalPages reproduces items
// exactly. Items shares backing storage with the input and must be treated
// as read-only.
func Paginate[T any](items []T, number, perPage int) (Page[T], error) {
	if perPage < 1 {
		return Page[T]{}, ErrInvalidPerPage
	}

	total := len(items)
	p := Page[T]{
		Items:      []T{},
		Number:     number,
		PerPage:    perPage,
		TotalPages: (total + perPage - 1) / perPage,
		TotalItems: total,
	}

	if number < 1 {
		return p, nil
	}

	start := (number - 1) * perPage
	if start >= total {
		return p, nil
	}

	end := start + perPage
	if end > total {
		end = total
	}
	p.Items = items[start:end]
	return p, nil
}
