package utils

// CalculateTotalPages returns ceil(total / pageSize). Zero matches means zero
// pages.
func CalculateTotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}
