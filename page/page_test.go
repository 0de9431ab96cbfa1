package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	// perPage=25 over 40 items: two pages, the second short.
	items := sequence(40)

	p1, err := Paginate(items, 1, 25)
	require.NoError(t, err)
	require.Len(t, p1.Items, 25)
	require.Equal(t, 1, p1.Number)
	require.Equal(t, 2, p1.TotalPages)
	require.Equal(t, 40, p1.TotalItems)

	p2, err := Paginate(items, 2, 25)
	require.NoError(t, err)
	require.Len(t, p2.Items, 15)
	require.Equal(t, 25, p2.Items[0])

	// Past the end: empty items, true totals.
	p3, err := Paginate(items, 3, 25)
	require.NoError(t, err)
	require.Empty(t, p3.Items)
	require.Equal(t, 2, p3.TotalPages)
	require.Equal(t, 40, p3.TotalItems)
}

func TestPaginate_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perPage int
	}{
		{name: "even split", total: 100, perPage: 25},
		{name: "ragged tail", total: 101, perPage: 25},
		{name: "single page", total: 7, perPage: 25},
		{name: "page size one", total: 9, perPage: 1},
		{name: "empty", total: 0, perPage: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := sequence(tt.total)

			first, err := Paginate(items, 1, tt.perPage)
			require.NoError(t, err)

			rebuilt := make([]int, 0, tt.total)
			for n := 1; n <= first.TotalPages; n++ {
				p, err := Paginate(items, n, tt.perPage)
				require.NoError(t, err)
				rebuilt = append(rebuilt, p.Items...)
			}
			require.Equal(t, items, rebuilt)
		})
	}
}

func TestPaginate_PageBelowOne(t *testing.T) {
	items := sequence(10)

	for _, number := range []int{0, -1, -100} {
		p, err := Paginate(items, number, 5)
		require.NoError(t, err)
		require.Empty(t, p.Items)
		require.Equal(t, number, p.Number)
		require.Equal(t, 2, p.TotalPages)
		require.Equal(t, 10, p.TotalItems)
	}
}

func TestPaginate_InvalidPerPage(t *testing.T) {
	for _, perPage := range []int{0, -1, -25} {
		_, err := Paginate(sequence(10), 1, perPage)
		require.ErrorIs(t, err, ErrInvalidPerPage)
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	p, err := Paginate([]int{}, 1, 10)
	require.NoError(t, err)
	require.Empty(t, p.Items)
	require.Zero(t, p.TotalPages)
	require.Zero(t, p.TotalItems)
}
