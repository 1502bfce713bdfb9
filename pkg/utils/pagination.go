package utils

// Pagination describes one page of a list response.
type Pagination struct {
	TotalPage   int   `json:"total_page"`
	CurrentPage int   `json:"current_page"`
	Prev        int   `json:"prev"`
	Next        int   `json:"next"`
	Pages       []int `json:"pages"`
}

// GetOffset converts a 1-based page number into a row offset.
func GetOffset(limit, page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

// GetPagination builds the pagination block for a list of total rows.
func GetPagination(limit, page int, total int64) Pagination {
	totalPage := int((total + int64(limit) - 1) / int64(limit))
	if totalPage < 1 {
		totalPage = 1
	}

	pages := make([]int, totalPage)
	for i := range pages {
		pages[i] = i + 1
	}

	currentPage := page
	if currentPage < 1 {
		currentPage = 1
	} else if currentPage > totalPage {
		currentPage = totalPage
	}

	prev := currentPage - 1
	if prev < 1 {
		prev = 1
	}
	next := currentPage + 1
	if next > totalPage {
		next = totalPage
	}

	return Pagination{
		TotalPage:   totalPage,
		CurrentPage: currentPage,
		Prev:        prev,
		Next:        next,
		Pages:       pages,
	}
}
