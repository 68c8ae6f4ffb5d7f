package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginatedRequestDefaults(t *testing.T) {
	tests := []struct {
		name       string
		req        PaginatedRequest
		wantOffset int
		wantLimit  int
	}{
		{"zero values fall back", PaginatedRequest{}, 0, 10},
		{"first page", PaginatedRequest{Page: 1, Limit: 10}, 0, 10},
		{"second page", PaginatedRequest{Page: 2, Limit: 10}, 10, 10},
		{"limit capped at 100", PaginatedRequest{Page: 1, Limit: 500}, 0, 100},
		{"negative page", PaginatedRequest{Page: -3, Limit: 10}, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.req.Offset())
			assert.Equal(t, tt.wantLimit, tt.req.PerPage())
		})
	}
}
