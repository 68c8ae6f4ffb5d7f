package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		limit          int
		wantTotalPages int
	}{
		{"exact fit", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single row", 1, 10, 1},
		{"empty", 0, 10, 0},
		{"zero limit", 25, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewPaginatedResponse([]string{"a"}, 1, tt.limit, tt.total)
			assert.Equal(t, tt.wantTotalPages, resp.Meta.TotalPages)
			assert.Equal(t, tt.total, resp.Meta.Total)
		})
	}
}

func TestNewPaginatedResponseNilData(t *testing.T) {
	resp := NewPaginatedResponse[string](nil, 3, 10, 0)

	assert.NotNil(t, resp.Data, "empty pages serialize as [] not null")
	assert.Empty(t, resp.Data)
	assert.Equal(t, 3, resp.Meta.CurrentPage)
}
