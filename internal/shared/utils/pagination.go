package utils

// ApplyPagination calculates slice indices for a 1-indexed page.
// Returns (start, end) for slicing: slice[start:end]. Out-of-range pages
// collapse to an empty slice rather than an error.
func ApplyPagination(total, page, pageSize int) (start, end int) {
	if page < 1 {
		page = 1
	}
	start = (page - 1) * pageSize
	end = start + pageSize

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return start, end
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		return 1
	}
	return pages
}
