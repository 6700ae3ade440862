package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{name: "middle page", total: 3, page: 2, limit: 1, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "first page", total: 25, page: 1, limit: 10, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "last full page", total: 20, page: 2, limit: 10, totalPages: 2, hasNext: false, hasPrev: true},
		{name: "empty", total: 0, page: 1, limit: 10, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "page beyond total", total: 5, page: 3, limit: 10, totalPages: 1, hasNext: false, hasPrev: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.total, meta.TotalItems)
			assert.Equal(t, tc.totalPages, meta.TotalPages)
			assert.Equal(t, tc.hasNext, meta.HasNext)
			assert.Equal(t, tc.hasPrev, meta.HasPrev)
		})
	}
}

func TestPageQueryNormalize(t *testing.T) {
	q := &PageQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 0, q.Skip())

	q = &PageQuery{Page: 3, Limit: 500}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, 20, q.Skip())
}
