package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	p := NewPagination(2, 10, 35)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 10, p.PerPage)
	require.Equal(t, 35, p.Total)
	require.Equal(t, 4, p.TotalPages)
}

func TestNewPaginationClampsInput(t *testing.T) {
	t.Parallel()

	p := NewPagination(0, 0, 5)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 10, p.PerPage)
	require.Equal(t, 1, p.TotalPages)

	empty := NewPagination(1, 10, 0)
	require.Equal(t, 0, empty.Total)
	require.Equal(t, 0, empty.TotalPages)
}
