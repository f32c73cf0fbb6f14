package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// Request is a parsed page request: zero-based page index, page size and
// sort field plus direction.
type Request struct {
	Page   int
	Size   int
	SortBy string
	Desc   bool
}

// Parse reads page, size, sortBy and sortDirection query parameters,
// falling back to the given defaults. Out-of-range values are clamped
// rather than rejected.
func Parse(c *gin.Context, defaultSize int, defaultSort string) Request {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	sortBy := c.DefaultQuery("sortBy", defaultSort)
	desc := strings.EqualFold(c.DefaultQuery("sortDirection", "ASC"), "DESC")

	return Request{Page: page, Size: size, SortBy: sortBy, Desc: desc}
}

// Offset translates the page index into a row offset.
func (r Request) Offset() int {
	return r.Page * r.Size
}

// Page is one page of results plus the totals a client needs to paginate.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPage wraps content in page metadata. Content is never nil so empty
// pages serialize as [].
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
