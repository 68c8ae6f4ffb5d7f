package response

import (
	"theater-api/internal/data/entity"
)

// MovieResponse is the display subset of a movie: audit columns never
// leave the service boundary.
type MovieResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Genres      []string `json:"genres"`
	Rate        string   `json:"rate"`
	Runtime     int      `json:"runtime"`
	IsAvailable bool     `json:"is_available"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	genres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		genres[i] = string(g)
	}

	return MovieResponse{
		ID:          movie.ID.String(),
		Title:       movie.Title,
		Description: movie.Description,
		PosterURL:   movie.PosterURL,
		Genres:      genres,
		Rate:        string(movie.Rate),
		Runtime:     movie.RuntimeMinutes,
		IsAvailable: movie.IsAvailable,
	}
}
