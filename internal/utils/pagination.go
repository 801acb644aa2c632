package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Pagination holds normalized page parameters
type Pagination struct {
	Page    int
	PerPage int
}

// Offset returns the row offset for the current page
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta describes the page window of a paginated result
type PaginationMeta struct {
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Prev        *int  `json:"prev"`
	Next        *int  `json:"next"`
}

// PaginatedResponse wraps a page of data with its meta
type PaginatedResponse struct {
	Data interface{}    `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// ParsePagination reads page/per_page query parameters with defaults
func ParsePagination(c echo.Context) Pagination {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 || perPage > 100 {
		perPage = 10
	}

	return Pagination{Page: page, PerPage: perPage}
}

// BuildMeta computes pagination meta from a total row count
func BuildMeta(total int64, p Pagination) PaginationMeta {
	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	meta := PaginationMeta{
		Total:       total,
		LastPage:    lastPage,
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
	}

	if p.Page > 1 {
		prev := p.Page - 1
		meta.Prev = &prev
	}
	if p.Page < lastPage {
		next := p.Page + 1
		meta.Next = &next
	}

	return meta
}
