package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultSize = 20
	MaxSize     = 100
)

// Request describes the page of results a caller wants. Page is 0-based:
// Page*Size rows are skipped before up to Size rows are returned.
type Request struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// FromQuery reads page/size/sort/desc query parameters, clamping them to
// sane values.
func FromQuery(r *http.Request) Request {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 0 {
		page = 0
	}
	size, _ := strconv.Atoi(query.Get("size"))
	if size <= 0 || size > MaxSize {
		size = DefaultSize
	}

	return Request{
		Page: page,
		Size: size,
		Sort: query.Get("sort"),
		Desc: query.Get("desc") == "true",
	}
}

func (p Request) Limit() int {
	return p.Size
}

func (p Request) Offset() int {
	return p.Page * p.Size
}

// Meta echoes the request alongside the total match count across all pages,
// for the response envelope.
func (p Request) Meta(total int) map[string]any {
	return map[string]any{
		"page":        p.Page,
		"size":        p.Size,
		"total":       total,
		"total_pages": (total + p.Size - 1) / p.Size,
	}
}
