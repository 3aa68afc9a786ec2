// Package grid holds the paginated, filterable view over the tool catalog
// shared by the web listing, the terminal browser and the Discord browser.
package grid

// PageSize is the number of cards on one grid page
const PageSize = 12

// TotalPages is ceil(n/size), never less than 1 so an empty list still has
// a page to show the empty state on.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = PageSize
	}
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// ClampPage forces page into [1, TotalPages(n, size)]
func ClampPage(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(n, size); page > last {
		return last
	}
	return page
}

// Page returns the slice of list shown on the given 1-based page after
// clamping it. Out-of-range pages never panic.
func Page[T any](list []T, size, page int) []T {
	if size <= 0 {
		size = PageSize
	}
	page = ClampPage(page, len(list), size)
	start := (page - 1) * size
	if start >= len(list) {
		return []T{}
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}
