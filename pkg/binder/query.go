package binder

import (
	"fmt"
	"net/http"
	"strconv"
)

// Pagination carries list query parameters with the defaults applied.
type Pagination struct {
	Page int
	Size int
}

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query parses pagination parameters from the request. Absent parameters
// take the defaults; non-integer, non-positive page, or out-of-range size
// values are rejected rather than silently clamped.
func Query(r *http.Request) (Pagination, error) {
	p := Pagination{Page: DefaultPage, Size: DefaultSize}
	q := r.URL.Query()

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Pagination{}, fmt.Errorf("%w: page must be a positive integer, got %q", ErrInvalidQuery, raw)
		}
		p.Page = page
	}

	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 || size > MaxSize {
			return Pagination{}, fmt.Errorf("%w: size must be 1-%d, got %q", ErrInvalidQuery, MaxSize, raw)
		}
		p.Size = size
	}

	return p, nil
}

// Offset converts the page/size pair to a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}
