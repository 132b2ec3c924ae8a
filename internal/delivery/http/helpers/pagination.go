package helpers

import (
	"net/http"
	"strconv"

	"eventlisting/internal/domain"
)

// Paging query parameter defaults.
const (
	DefaultFrom = 0
	DefaultSize = 10
)

// ParsePage reads from and size from the request query string. from must be
// zero or positive and size positive; missing values fall back to defaults.
func ParsePage(r *http.Request) (domain.PageRequest, error) {
	page := domain.PageRequest{From: DefaultFrom, Size: DefaultSize}
	q := r.URL.Query()
	if s := q.Get("from"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return page, domain.NewValidationError("from must be a non-negative integer, got %q", s)
		}
		page.From = v
	}
	if s := q.Get("size"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return page, domain.NewValidationError("size must be a positive integer, got %q", s)
		}
		page.Size = v
	}
	return page, nil
}
