package domain

// PageSize is the number of products per listing page.
const PageSize = 9

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Items     []T
	Page      int
	CountPage int
}

// Paginate slices items into the requested 1-based page.
// The page is clamped to at least 1. A page past the end yields no items
// but still reports CountPage, and an empty input yields CountPage 0.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = PageSize
	}

	total := len(items)
	countPage := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page[T]{Items: []T{}, Page: page, CountPage: countPage}
	}
	end := min(start+size, total)

	slice := make([]T, end-start)
	copy(slice, items[start:end])

	return Page[T]{Items: slice, Page: page, CountPage: countPage}
}
