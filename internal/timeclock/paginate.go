package timeclock

// DefaultPageSize is the fixed page size used by the log browser.
const DefaultPageSize = 10

// PageInfo describes one resolved page of a listing.
type PageInfo struct {
	Page  int // 1-based, clamped into range
	Pages int // total pages, at least 1
	Total int

	// ShowControl is true only when the listing spans more than one page.
	ShowControl bool
}

// Paginate slices items for the requested 1-based page. Requests below 1 clamp
// to the first page and requests past the end clamp to the last valid page.
func Paginate[T any](items []T, pageSize, page int) ([]T, PageInfo) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(items)
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	info := PageInfo{Page: page, Pages: pages, Total: total, ShowControl: total > pageSize}

	start := (page - 1) * pageSize
	if start >= total {
		return nil, info
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return items[start:end], info
}
