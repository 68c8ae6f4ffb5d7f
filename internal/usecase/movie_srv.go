package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-api/internal/apperr"
	"theater-api/internal/data/entity"
	"theater-api/internal/data/repository"
	"theater-api/internal/dto/request"
	"theater-api/internal/dto/response"
	"theater-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, actorID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, actorID uuid.UUID, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	RetireMovie(ctx context.Context, actorID uuid.UUID, movieID string) (*response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	SearchMovies(ctx context.Context, term string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, actorID uuid.UUID, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	genres, err := parseGenres(req.Genres)
	if err != nil {
		return nil, err
	}

	rate := entity.RateTBA
	if req.Rate != nil {
		rate, err = parseRate(*req.Rate)
		if err != nil {
			return nil, err
		}
	}

	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
			CreatedBy: &actorID,
		},
		Title:          req.Title,
		Description:    req.Description,
		PosterURL:      req.PosterURL,
		Genres:         genres,
		Rate:           rate,
		RuntimeMinutes: req.Runtime,
		IsAvailable:    true,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, err
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, actorID uuid.UUID, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	if req.PosterURL != nil {
		movie.PosterURL = *req.PosterURL
	}
	if req.Genres != nil {
		genres, err := parseGenres(req.Genres)
		if err != nil {
			return nil, err
		}
		movie.Genres = genres
	}
	if req.Rate != nil {
		rate, err := parseRate(*req.Rate)
		if err != nil {
			return nil, err
		}
		movie.Rate = rate
	}
	if req.Runtime != nil {
		movie.RuntimeMinutes = *req.Runtime
	}

	now := time.Now().UTC()
	movie.UpdatedAt = &now
	movie.UpdatedBy = &actorID

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, err
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// RetireMovie flips the availability flag; the row stays for audit
// history. Already-retired movies conflict.
func (s *movieService) RetireMovie(ctx context.Context, actorID uuid.UUID, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	if !movie.IsAvailable {
		return nil, apperr.Conflict("movie with id %s is already unavailable", movieID)
	}

	now := time.Now().UTC()
	movie.IsAvailable = false
	movie.DeletedAt = &now
	movie.DeletedBy = &actorID

	// Existing showtimes for the movie are left untouched; retiring a
	// movie does not cascade.
	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to retire movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, err
	}

	s.log.Info("Movie retired",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovies(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.PerPage()
	offset := req.Offset()

	movies, err := s.repo.Movie.FindAvailable(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to list movies",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.CountAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to count movies", zap.Error(err))
		return nil, fmt.Errorf("count movies: %w", err)
	}

	return response.NewPaginatedResponse(moviesToResponses(movies), req.Page, limit, total), nil
}

func (s *movieService) SearchMovies(ctx context.Context, term string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	limit := req.PerPage()
	offset := req.Offset()

	movies, err := s.repo.Movie.SearchByTerm(ctx, term, offset, limit)
	if err != nil {
		s.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, err
	}

	total, err := s.repo.Movie.CountByTerm(ctx, term)
	if err != nil {
		s.log.Error("Failed to count movies by term",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, err
	}

	return response.NewPaginatedResponse(moviesToResponses(movies), req.Page, limit, total), nil
}

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Validation("invalid movie id %q", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, apperr.NotFound("movie with id %s not found", movieID)
	}

	return movie, nil
}

func moviesToResponses(movies []*entity.Movie) []response.MovieResponse {
	out := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = response.MovieToResponse(movie)
	}
	return out
}

func parseGenres(raw []string) ([]entity.Genre, error) {
	genres := make([]entity.Genre, len(raw))
	for i, g := range raw {
		genre := entity.Genre(g)
		if !genre.Valid() {
			return nil, apperr.Validation(
				"invalid genre %q, valid genres: %s", g, joinValidGenres())
		}
		genres[i] = genre
	}
	return genres, nil
}

func parseRate(raw string) (entity.Rate, error) {
	rate := entity.Rate(raw)
	if !rate.Valid() {
		return "", apperr.Validation(
			"invalid rate %q, valid rates: %s", raw, joinValidRates())
	}
	return rate, nil
}

func joinValidGenres() string {
	out := ""
	for i, g := range entity.ValidGenres {
		if i > 0 {
			out += ", "
		}
		out += string(g)
	}
	return out
}

func joinValidRates() string {
	out := ""
	for i, r := range entity.ValidRates {
		if i > 0 {
			out += ", "
		}
		out += string(r)
	}
	return out
}
