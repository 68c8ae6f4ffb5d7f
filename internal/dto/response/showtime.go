package response

import (
	"time"

	"theater-api/internal/data/entity"
)

// ShowtimeMovie is the movie display subset kept on showtime listings.
type ShowtimeMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Rate  string `json:"rate"`
}

type ShowtimeResponse struct {
	ID          string        `json:"id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Capacity    int           `json:"capacity"`
	IsAvailable bool          `json:"is_available"`
	Movie       ShowtimeMovie `json:"movie"`
}

// ShowtimeDetailResponse carries the fully resolved movie, returned by
// the single-showtime lookup.
type ShowtimeDetailResponse struct {
	ID          string        `json:"id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Capacity    int           `json:"capacity"`
	IsAvailable bool          `json:"is_available"`
	Movie       MovieResponse `json:"movie"`
}

func ShowtimeToResponse(showtime *entity.Showtime) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:          showtime.ID.String(),
		StartTime:   showtime.StartTime,
		EndTime:     showtime.EndTime,
		Capacity:    showtime.Capacity,
		IsAvailable: showtime.IsAvailable,
	}

	if showtime.Movie != nil {
		resp.Movie = ShowtimeMovie{
			ID:    showtime.Movie.ID.String(),
			Title: showtime.Movie.Title,
			Rate:  string(showtime.Movie.Rate),
		}
	} else {
		resp.Movie = ShowtimeMovie{ID: showtime.MovieID.String()}
	}

	return resp
}

func ShowtimeToDetailResponse(showtime *entity.Showtime) ShowtimeDetailResponse {
	resp := ShowtimeDetailResponse{
		ID:          showtime.ID.String(),
		StartTime:   showtime.StartTime,
		EndTime:     showtime.EndTime,
		Capacity:    showtime.Capacity,
		IsAvailable: showtime.IsAvailable,
	}

	if showtime.Movie != nil {
		resp.Movie = MovieToResponse(showtime.Movie)
	}

	return resp
}
