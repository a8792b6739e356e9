package catalog

import (
	"fmt"
	"testing"

	"animexplorer/internal/models"

	"github.com/stretchr/testify/assert"
)

func many(n int) []models.AnimeData {
	items := make([]models.AnimeData, n)
	for i := range items {
		items[i] = models.AnimeData{MalId: i + 1, Title: fmt.Sprintf("anime %d", i+1)}
	}
	return items
}

func TestTotalPages(t *testing.T) {
	t.Parallel()
	cases := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{20, 1},
		{21, 2},
		{40, 2},
		{45, 3},
		{400, 20},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.n, PageSize), "n=%d", tc.n)
	}
}

func TestPaginate_LastPageHoldsRemainder(t *testing.T) {
	t.Parallel()
	items := many(45)

	first := Paginate(items, 1, PageSize)
	assert.Len(t, first.Items, 20)
	assert.Equal(t, 1, first.Items[0].MalId)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	second := Paginate(items, 2, PageSize)
	assert.Equal(t, 21, second.Items[0].MalId)
	assert.Equal(t, 40, second.Items[19].MalId)

	last := Paginate(items, 3, PageSize)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, 41, last.Items[0].MalId)
	assert.Equal(t, 3, last.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, last.Numbers)
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())
	assert.Equal(t, 2, last.Prev())
}

func TestPaginate_ClampsOutOfRangePages(t *testing.T) {
	t.Parallel()
	items := many(30)

	assert.Equal(t, 2, Paginate(items, 99, PageSize).Page)
	assert.Equal(t, 1, Paginate(items, 0, PageSize).Page)
	assert.Equal(t, 1, Paginate(items, -4, PageSize).Page)
}

func TestPaginate_Empty(t *testing.T) {
	t.Parallel()
	p := Paginate(nil, 1, PageSize)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 0, p.TotalPages)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.False(t, p.ShowNav())
}

func TestPaginate_SinglePageHidesNav(t *testing.T) {
	t.Parallel()
	p := Paginate(many(20), 1, PageSize)

	assert.Len(t, p.Items, 20)
	assert.False(t, p.ShowNav())
	assert.True(t, Paginate(many(21), 1, PageSize).ShowNav())
}
