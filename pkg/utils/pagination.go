package utils

func CalculateTotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func CalculateOffset(page, size int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * size
}
