package devserver

import (
	"net/http"
	"strconv"

	"kembang/internal/domain"
)

const defaultPerPage = 15

// paginate slices items by the page and per_page query parameters. Pages
// past the end come back empty.
func paginate[T any](r *http.Request, items []T) ([]T, domain.Pagination) {
	q := r.URL.Query()
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page, _ := strconv.Atoi(q.Get("page"))
	if page <= 0 {
		page = 1
	}
	last := (len(items) + perPage - 1) / perPage
	if last == 0 {
		last = 1
	}

	from := (page - 1) * perPage
	if from > len(items) {
		from = len(items)
	}
	to := from + perPage
	if to > len(items) {
		to = len(items)
	}
	return items[from:to], domain.Pagination{
		CurrentPage: page,
		LastPage:    last,
		PerPage:     perPage,
		Total:       len(items),
	}
}
