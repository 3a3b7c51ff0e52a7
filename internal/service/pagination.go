package service

// Pagination bounds shared by both resource collections.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// clampPage forces the requested page to be at least 1.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// clampPageSize falls back to the default when the requested size is out of
// the accepted [1, 100] range.
func clampPageSize(pageSize int) int {
	if pageSize < 1 || pageSize > maxPageSize {
		return defaultPageSize
	}
	return pageSize
}

// pageOffset converts a clamped page/pageSize pair into the slice offset of
// the ordered collection.
func pageOffset(page, pageSize int) uint64 {
	return uint64((page - 1) * pageSize)
}
