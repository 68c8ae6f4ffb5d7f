package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("credentials are not valid"), http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"not found", NotFound("movie %s not found", "abc"), http.StatusNotFound},
		{"conflict", Conflict("duplicate"), http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped sentinel", fmt.Errorf("outer: %w", NotFound("inner")), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWrappersKeepDetailAndKind(t *testing.T) {
	err := Conflict("showtime with id %s is already unavailable", "abc")

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "showtime with id abc is already unavailable")
}
