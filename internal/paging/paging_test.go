package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		size     int
		expected int
	}{
		{"empty", 0, 6, 1},
		{"partial page", 5, 6, 1},
		{"exact", 12, 6, 2},
		{"thirteen by six", 13, 6, 3},
		{"thirteen by twelve", 13, 12, 2},
		{"zero size", 13, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalPages(tt.total, tt.size))
		})
	}
}

func TestSliceLastPageHoldsRemainder(t *testing.T) {
	items := seq(13)

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, Slice(items, 1, 6))
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, Slice(items, 2, 6))
	assert.Equal(t, []int{12}, Slice(items, 3, 6))
}

func TestSliceOutOfRangeIsEmpty(t *testing.T) {
	items := seq(13)

	assert.Empty(t, Slice(items, 4, 6))
	assert.Empty(t, Slice(items, 0, 6))
	assert.Empty(t, Slice(items, -3, 6))
	assert.Empty(t, Slice(items, 1<<62, 6))
	assert.Empty(t, Slice(items, 1, 0))
	assert.Empty(t, Slice([]int(nil), 1, 6))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(5, 4, 6))
	assert.Equal(t, 3, Clamp(9, 13, 6))
	assert.Equal(t, 1, Clamp(-1, 13, 6))
	assert.Equal(t, 2, Clamp(2, 13, 6))
}

func TestValidPageSize(t *testing.T) {
	assert.True(t, ValidPageSize(6))
	assert.True(t, ValidPageSize(12))
	assert.False(t, ValidPageSize(10))
}
