package models

import "math"

// Pagination bounds for list endpoints.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes the page returned alongside list payloads.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// PageOffset converts a 1-based page into a zero-based row offset. Callers
// must check OffsetOverflows first.
func PageOffset(page, size int) int {
	return (page - 1) * size
}

// OffsetOverflows reports whether the offset of page does not fit in an int.
// Such a page starts past any table the service can hold.
func OffsetOverflows(page, size int) bool {
	return size > 0 && page > 0 && page-1 > math.MaxInt/size
}
