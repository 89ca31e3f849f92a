package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		totalItems int64
		totalPages int
		nextPage   *int
		prevPage   *int
	}{
		{name: "single page", page: 1, limit: 10, totalItems: 5, totalPages: 1},
		{name: "first of many", page: 1, limit: 10, totalItems: 25, totalPages: 3, nextPage: intPtr(2)},
		{name: "middle page", page: 2, limit: 10, totalItems: 25, totalPages: 3, nextPage: intPtr(3), prevPage: intPtr(1)},
		{name: "last page", page: 3, limit: 10, totalItems: 25, totalPages: 3, prevPage: intPtr(2)},
		{name: "exact multiple", page: 2, limit: 10, totalItems: 20, totalPages: 2, prevPage: intPtr(1)},
		{name: "empty result", page: 1, limit: 10, totalItems: 0, totalPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPaginatedResponse([]string{}, tt.page, tt.limit, tt.totalItems)

			assert.Equal(t, tt.page, resp.Page)
			assert.Equal(t, tt.totalItems, resp.TotalItems)
			assert.Equal(t, tt.totalPages, resp.TotalPages)

			if tt.nextPage == nil {
				assert.Nil(t, resp.NextPage)
			} else {
				require.NotNil(t, resp.NextPage)
				assert.Equal(t, *tt.nextPage, *resp.NextPage)
			}
			if tt.prevPage == nil {
				assert.Nil(t, resp.PrevPage)
			} else {
				require.NotNil(t, resp.PrevPage)
				assert.Equal(t, *tt.prevPage, *resp.PrevPage)
			}
		})
	}
}

func intPtr(i int) *int { return &i }
