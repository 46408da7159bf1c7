package catalog

// Fixed page sizes. Not runtime-configurable; each view bakes in its own.
const (
	AuthorsPerPage = 5
	BooksPerPage   = 6
)

// TotalPages returns the page count for n items: ceil(n/size), minimum 1.
// An empty list still renders a single empty page control.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage snaps a requested page index into [1, TotalPages(n, size)] so a
// shrinking filtered list can never strand the view on an out-of-range page.
func ClampPage(page, n, size int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(n, size); page > last {
		return last
	}
	return page
}

// Paginate slices the filtered list for a 1-based page index and returns the
// slice together with the total page count. Out-of-range pages are clamped
// rather than rejected.
func Paginate[T any](list []T, size, page int) ([]T, int) {
	total := TotalPages(len(list), size)
	page = ClampPage(page, len(list), size)

	start := (page - 1) * size
	if start >= len(list) {
		return []T{}, total
	}
	end := start + size
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], total
}
