package resolvers

func defaultPageSize(p int32) int {
	if p > 0 {
		return int(p)
	}
	return 20
}

func defaultCurrentPage(p int32) int {
	if p > 0 {
		return int(p)
	}
	return 1
}

func totalPages(total int64, pageSize int) int32 {
	if pageSize <= 0 {
		return 0
	}
	return int32((total + int64(pageSize) - 1) / int64(pageSize))
}
