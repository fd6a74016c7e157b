package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		totalCount int64
		pageSize   int
		want       int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page rounds up", 25, 10, 3},
		{"single short page", 3, 10, 1},
		{"empty table", 0, 10, 0},
		{"page size one", 7, 1, 7},
		{"zero page size guards against division", 10, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, TotalPages(tc.totalCount, tc.pageSize))
		})
	}
}

func TestPaginated(t *testing.T) {
	t.Parallel()

	resp := Paginated([]string{"a", "b"}, 1, 10, 25, "fetched")
	require.True(t, resp.Success)
	require.Equal(t, 200, resp.StatusCode)
	require.Equal(t, "fetched", resp.Message)
	require.Equal(t, int64(25), resp.Meta["totalCount"])
	require.Equal(t, 3, resp.Meta["totalPages"])
	require.Equal(t, 1, resp.Meta["currentPage"])
	require.Equal(t, 10, resp.Meta["pageSize"])
}

func TestFailure(t *testing.T) {
	t.Parallel()

	resp := Failure(404, "artist not found")
	require.False(t, resp.Success)
	require.True(t, resp.Error)
	require.Equal(t, 404, resp.StatusCode)
	require.Equal(t, "artist not found", resp.Message)
	require.Nil(t, resp.DataResponse)
}
