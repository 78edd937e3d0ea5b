package pager

import "VideoTube.com/pkg/constants"

// Page is the envelope every paginated list view is delivered in.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// Normalize clamps page and limit the way the list services expect:
// non-positive values fall back to defaults, limit is capped.
func Normalize(page, limit int64) (int64, int64) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}

// Paginate slices an already sorted, fully composed view sequence into a
// stable window starting at (page-1)*limit. A page past the end yields an
// empty item list, not an error.
func Paginate[T any](items []T, page, limit int64) Page[T] {
	page, limit = Normalize(page, limit)

	total := int64(len(items))
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1 && total > 0,
	}
}
