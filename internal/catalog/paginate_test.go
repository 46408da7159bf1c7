package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{12, 6, 2},
		{13, 6, 3},
		{100, 6, 17},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d size=%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n, tt.size))
		})
	}
}

func TestPaginateScenario(t *testing.T) {
	// 12 matching entries, page size 5: pages {1,2,3},
	// page 1 holds entries 0-4, page 3 holds entries 10-11.
	list := make([]int, 12)
	for i := range list {
		list[i] = i
	}

	page1, total := Paginate(list, 5, 1)
	assert.Equal(t, 3, total)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, page1)

	page2, _ := Paginate(list, 5, 2)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, page2)

	page3, _ := Paginate(list, 5, 3)
	assert.Equal(t, []int{10, 11}, page3)
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	list := []int{1, 2, 3}

	slice, total := Paginate(list, 5, 9)
	assert.Equal(t, 1, total)
	assert.Equal(t, []int{1, 2, 3}, slice)

	slice, _ = Paginate(list, 5, 0)
	assert.Equal(t, []int{1, 2, 3}, slice)

	slice, _ = Paginate(list, 5, -2)
	assert.Equal(t, []int{1, 2, 3}, slice)
}

func TestPaginateEmptyList(t *testing.T) {
	slice, total := Paginate([]string{}, 6, 1)
	assert.Empty(t, slice)
	assert.Equal(t, 1, total)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 12, 5))
	assert.Equal(t, 1, ClampPage(1, 12, 5))
	assert.Equal(t, 3, ClampPage(3, 12, 5))
	assert.Equal(t, 3, ClampPage(7, 12, 5))
	assert.Equal(t, 1, ClampPage(4, 0, 5))
}
