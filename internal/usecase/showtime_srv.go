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

// ShowtimeService is the showtime lifecycle engine. A showtime moves
// Active -> Retired and never back; end times are always derived from
// the movie runtime; only future showtimes may be mutated.
type ShowtimeService interface {
	CreateShowtime(ctx context.Context, actorID uuid.UUID, movieID string, req *request.ShowtimeRequest) (*response.ShowtimeDetailResponse, error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeDetailResponse, error)
	UpdateShowtime(ctx context.Context, actorID uuid.UUID, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeDetailResponse, error)
	RetireShowtime(ctx context.Context, actorID uuid.UUID, showtimeID string) (*response.ShowtimeDetailResponse, error)
	GetShowtimes(ctx context.Context, req *request.DatePaginatedRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error)
	GetShowtimesByMovie(ctx context.Context, movieID string, req *request.DatePaginatedRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, actorID uuid.UUID, movieID string, req *request.ShowtimeRequest) (*response.ShowtimeDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Validation("invalid movie id %q", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to resolve movie for showtime",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("resolve movie: %w", err)
	}
	if movie == nil {
		return nil, apperr.NotFound("movie with id %s not found", movieID)
	}

	capacity := entity.DefaultShowtimeCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	now := time.Now().UTC()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			CreatedBy: &actorID,
		},
		StartTime:   req.StartTime,
		EndTime:     deriveEndTime(req.StartTime, movie.RuntimeMinutes),
		Capacity:    capacity,
		IsAvailable: true,
		MovieID:     movie.ID,
		Movie:       movie,
	}

	// The (movie, start_time) unique constraint is the single source of
	// truth for duplicates; the repo surfaces its rejection as Conflict.
	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		s.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Time("start_time", req.StartTime),
		)
		return nil, err
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", movieID),
		zap.Time("start_time", showtime.StartTime),
		zap.Time("end_time", showtime.EndTime),
	)

	resp := response.ShowtimeToDetailResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeDetailResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	resp := response.ShowtimeToDetailResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) UpdateShowtime(ctx context.Context, actorID uuid.UUID, showtimeID string, req *request.ShowtimeUpdateRequest) (*response.ShowtimeDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update showtime validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("%s", utils.FormatValidationErrors(errs))
	}

	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	// The guard runs against the stored start time, before any new
	// value is applied.
	if now := time.Now().UTC(); !now.Before(showtime.StartTime) {
		return nil, apperr.Conflict(
			"only future showtimes can be modified, showtime started at %s",
			showtime.StartTime.Format(time.RFC3339),
		)
	}

	if req.StartTime != nil {
		showtime.StartTime = *req.StartTime
		showtime.EndTime = deriveEndTime(*req.StartTime, showtime.Movie.RuntimeMinutes)
	}
	if req.Capacity != nil {
		showtime.Capacity = *req.Capacity
	}

	now := time.Now().UTC()
	showtime.UpdatedAt = &now
	showtime.UpdatedBy = &actorID

	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		s.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, err
	}

	s.log.Info("Showtime updated",
		zap.String("showtime_id", showtimeID),
		zap.Time("start_time", showtime.StartTime),
	)

	resp := response.ShowtimeToDetailResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) RetireShowtime(ctx context.Context, actorID uuid.UUID, showtimeID string) (*response.ShowtimeDetailResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	// Retired is terminal. The already-retired check fires before the
	// past-time check so a duplicate cancel is reported as such.
	if !showtime.IsAvailable {
		return nil, apperr.Conflict("showtime with id %s is already unavailable", showtimeID)
	}

	if now := time.Now().UTC(); !now.Before(showtime.StartTime) {
		return nil, apperr.Conflict(
			"only future showtimes can be cancelled, showtime started at %s",
			showtime.StartTime.Format(time.RFC3339),
		)
	}

	now := time.Now().UTC()
	showtime.IsAvailable = false
	showtime.DeletedAt = &now
	showtime.DeletedBy = &actorID

	// TODO: cancel reservations that depend on this showtime once a
	// reservation module exists.
	if err := s.repo.Showtime.Update(ctx, showtime); err != nil {
		s.log.Error("Failed to retire showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, err
	}

	s.log.Info("Showtime retired",
		zap.String("showtime_id", showtimeID),
		zap.String("deleted_by", actorID.String()),
	)

	resp := response.ShowtimeToDetailResponse(showtime)
	return &resp, nil
}

func (s *showtimeService) GetShowtimes(ctx context.Context, req *request.DatePaginatedRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	filter := upcomingFilter(req.StartDate, nil)
	return s.listShowtimes(ctx, filter, req)
}

func (s *showtimeService) GetShowtimesByMovie(ctx context.Context, movieID string, req *request.DatePaginatedRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperr.Validation("invalid movie id %q", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolve movie: %w", err)
	}
	if movie == nil {
		return nil, apperr.NotFound("movie with id %s not found", movieID)
	}

	filter := upcomingFilter(req.StartDate, &movie.ID)
	return s.listShowtimes(ctx, filter, req)
}

func (s *showtimeService) listShowtimes(ctx context.Context, filter repository.ShowtimeFilter, req *request.DatePaginatedRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	limit := req.PerPage()
	offset := req.Offset()

	showtimes, err := s.repo.Showtime.FindUpcoming(ctx, filter, offset, limit)
	if err != nil {
		s.log.Error("Failed to list showtimes",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list showtimes: %w", err)
	}

	total, err := s.repo.Showtime.CountUpcoming(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count showtimes", zap.Error(err))
		return nil, fmt.Errorf("count showtimes: %w", err)
	}

	showtimeResponses := make([]response.ShowtimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		showtimeResponses[i] = response.ShowtimeToResponse(showtime)
	}

	s.log.Debug("Showtimes listed",
		zap.Int("count", len(showtimes)),
		zap.Int64("total", total),
		zap.Time("from", filter.From),
	)

	return response.NewPaginatedResponse(showtimeResponses, req.Page, limit, total), nil
}

// deriveEndTime computes the screening end from the start instant and
// the movie runtime. This is the only place an end time is ever set.
func deriveEndTime(startTime time.Time, runtimeMinutes int) time.Time {
	return startTime.Add(time.Duration(runtimeMinutes) * time.Minute)
}

// upcomingFilter builds the listing window. Without a date the window
// opens at the current instant; a given date widens to the full UTC
// calendar day it falls on.
func upcomingFilter(startDate *time.Time, movieID *uuid.UUID) repository.ShowtimeFilter {
	if startDate == nil {
		return repository.ShowtimeFilter{From: time.Now().UTC(), MovieID: movieID}
	}

	from, to := dayWindow(*startDate)
	return repository.ShowtimeFilter{From: from, To: &to, MovieID: movieID}
}

// dayWindow returns the UTC day containing date as a half-open
// [start, end) range.
func dayWindow(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

func (s *showtimeService) findShowtime(ctx context.Context, showtimeID string) (*entity.Showtime, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, apperr.Validation("invalid showtime id %q", showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find showtime",
			zap.Error(err),
			zap.String("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, apperr.NotFound("showtime with id %s not found", showtimeID)
	}

	return showtime, nil
}
