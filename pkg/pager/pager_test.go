package pager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	page, limit := Normalize(0, 0)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(10), limit)

	page, limit = Normalize(-3, 500)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, int64(100), limit)

	page, limit = Normalize(7, 25)
	assert.Equal(t, int64(7), page)
	assert.Equal(t, int64(25), limit)
}

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 23)
	for i := 0; i < 23; i++ {
		items = append(items, i)
	}

	t.Run("FirstPage", func(t *testing.T) {
		page := Paginate(items, 1, 10)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, 0, page.Items[0])
		assert.Equal(t, int64(23), page.TotalItems)
		assert.Equal(t, int64(3), page.TotalPages)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		page := Paginate(items, 3, 10)
		assert.Len(t, page.Items, 3)
		assert.Equal(t, 20, page.Items[0])
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("ExactFit", func(t *testing.T) {
		page := Paginate(items[:20], 2, 10)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, int64(2), page.TotalPages)
		assert.False(t, page.HasNextPage)
	})

	t.Run("PastTheEnd", func(t *testing.T) {
		page := Paginate(items, 9, 10)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasNextPage)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		page := Paginate([]int{}, 1, 10)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(0), page.TotalItems)
		assert.Equal(t, int64(0), page.TotalPages)
		assert.False(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})
}
