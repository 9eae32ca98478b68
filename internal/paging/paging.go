// Package paging slices a filtered result set into fixed-size pages.
// Pages are 1-based.
package paging

import "slices"

// Supported page sizes
var PageSizes = []int{6, 12}

// DefaultPageSize is used when no valid size is configured
const DefaultPageSize = 6

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// TotalPages returns max(1, ceil(totalItems / pageSize)).
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Clamp forces page into [1, TotalPages(totalItems, pageSize)].
func Clamp(page, totalItems, pageSize int) int {
	return min(max(page, 1), TotalPages(totalItems, pageSize))
}

// Slice returns the items on page. Out-of-range pages yield an empty
// (possibly partial) slice rather than panicking.
func Slice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 || page < 1 || page-1 > len(items)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}
