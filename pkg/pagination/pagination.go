// Package pagination derives the page-button window and the
// "showing A–B of N" caption for the list views.
package pagination

// windowSize is the maximum number of page buttons rendered at once.
const windowSize = 5

// Window is the UI-ready description of the pagination controls.
// Pages is a contiguous inclusive range. ShowFirst/ShowLast signal the "1"
// and last-page shortcuts outside the window; the ellipsis flags are set only
// when the neighbor (2, or totalPages-1) is also outside the window.
type Window struct {
	TotalPages    int   `json:"totalPages"`
	Pages         []int `json:"pages"`
	ShowFirst     bool  `json:"showFirst"`
	FirstEllipsis bool  `json:"firstEllipsis"`
	ShowLast      bool  `json:"showLast"`
	LastEllipsis  bool  `json:"lastEllipsis"`
}

// TotalPages is ceil(totalItems / itemsPerPage).
func TotalPages(totalItems, itemsPerPage int) int {
	if totalItems <= 0 || itemsPerPage <= 0 {
		return 0
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

// ClampPage confines navigation to [1, totalPages]; moving past either end
// is a no-op, not an error.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Compute returns the window centered on currentPage and clamped to the page
// range. Zero items produce an empty window: no controls at all.
func Compute(totalItems, itemsPerPage, currentPage int) Window {
	totalPages := TotalPages(totalItems, itemsPerPage)
	if totalPages == 0 {
		return Window{}
	}

	startPage := currentPage - windowSize/2
	if startPage < 1 {
		startPage = 1
	}
	endPage := startPage + windowSize - 1
	if endPage > totalPages {
		endPage = totalPages
		startPage = endPage - windowSize + 1
		if startPage < 1 {
			startPage = 1
		}
	}

	pages := make([]int, 0, endPage-startPage+1)
	for p := startPage; p <= endPage; p++ {
		pages = append(pages, p)
	}

	w := Window{TotalPages: totalPages, Pages: pages}
	if startPage > 1 {
		w.ShowFirst = true
		w.FirstEllipsis = startPage > 2
	}
	if endPage < totalPages {
		w.ShowLast = true
		w.LastEllipsis = endPage < totalPages-1
	}
	return w
}

// Caption returns the inclusive item range shown on the current page:
// "Mostrando From - To de totalItems".
func Caption(totalItems, itemsPerPage, currentPage int) (from, to int) {
	if totalItems <= 0 {
		return 0, 0
	}
	from = (currentPage-1)*itemsPerPage + 1
	to = currentPage * itemsPerPage
	if to > totalItems {
		to = totalItems
	}
	return from, to
}
