package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/products?"+query, nil)
	return GetPaginationParams(e.NewContext(req, httptest.NewRecorder()))
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		query    string
		page     int
		pageSize int
		offset   int
	}{
		{"", 1, 20, 0},
		{"page=3&limit=10", 3, 10, 20},
		{"page=0&limit=0", 1, 20, 0},
		{"page=-2&limit=500", 1, 20, 0},
		{"page=abc&limit=xyz", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			p := paramsFor(tt.query)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.offset, p.Offset)
		})
	}
}

func TestWindow(t *testing.T) {
	p := PaginationParams{Page: 2, PageSize: 4, Offset: 4}

	start, end := p.Window(6)
	assert.Equal(t, 4, start)
	assert.Equal(t, 6, end)

	start, end = p.Window(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)

	start, end = p.Window(20)
	assert.Equal(t, 4, start)
	assert.Equal(t, 8, end)
}
