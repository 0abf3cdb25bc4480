package query

import "github.com/EvaneiWFreitas/sisManutencao/internal/entity"

// DefaultPageSize matches the orders page.
const DefaultPageSize = 10

// PageBounds computes the visible slice [(page-1)*size, page*size) clipped to
// [0, total). Pages beyond the end yield an empty range.
func PageBounds(page, size, total int) (start, end int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	start = (page - 1) * size
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}

// Page returns one page of orders.
func Page(orders []entity.ServiceOrder, page, size int) []entity.ServiceOrder {
	start, end := PageBounds(page, size, len(orders))
	return orders[start:end]
}

// TotalPages returns the page count for total records at the given page size.
func TotalPages(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	pages := total / size
	if total%size > 0 {
		pages++
	}
	return pages
}
