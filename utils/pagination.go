package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PerPage     int  `json:"perPage"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

func NewPagination(page, perPage, total int) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// Offset is the index of the first item on the current page. Pages past
// the end yield an offset at or beyond Total without overflowing.
func (p *Pagination) Offset() int {
	if p.CurrentPage < 1 || p.PerPage < 1 {
		return 0
	}
	if p.CurrentPage-1 > p.Total/p.PerPage {
		return p.Total
	}
	return (p.CurrentPage - 1) * p.PerPage
}

type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// PageParams reads page and perPage from the query string, clamped to sane values.
func PageParams(c *gin.Context, defaultPerPage int) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	perPage, err := strconv.Atoi(c.Query("perPage"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}
