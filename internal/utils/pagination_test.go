package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?page=abc&per_page=-1", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	p := ParsePagination(c)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestParsePagination_CapsPerPage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?page=3&per_page=500", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	p := ParsePagination(c)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
}

func TestPaginationOffset(t *testing.T) {
	p := Pagination{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestBuildMeta_MiddlePage(t *testing.T) {
	meta := BuildMeta(45, Pagination{Page: 2, PerPage: 10})

	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 5, meta.LastPage)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 1, *meta.Prev)
	assert.Equal(t, 3, *meta.Next)
}

func TestBuildMeta_SinglePage(t *testing.T) {
	meta := BuildMeta(5, Pagination{Page: 1, PerPage: 10})

	assert.Equal(t, 1, meta.LastPage)
	assert.Nil(t, meta.Prev)
	assert.Nil(t, meta.Next)
}
