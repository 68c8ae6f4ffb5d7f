package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"theater-api/internal/data/entity"
	"theater-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowtimeFilter narrows upcoming-showtime queries. From is always set;
// To and MovieID are optional.
type ShowtimeFilter struct {
	From    time.Time
	To      *time.Time
	MovieID *uuid.UUID
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	FindUpcoming(ctx context.Context, filter ShowtimeFilter, offset, limit int) ([]*entity.Showtime, error)
	CountUpcoming(ctx context.Context, filter ShowtimeFilter) (int64, error)
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

// Create persists a showtime. Concurrent creates for the same
// (movie_id, start_time) pair are resolved by the unique constraint,
// surfaced here as a Conflict; the store is the single source of truth
// for duplicates.
func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, start_time, end_time, capacity,
		                       is_available, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Capacity,
		showtime.IsAvailable,
		showtime.CreatedAt,
		showtime.CreatedBy,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.Time("start_time", showtime.StartTime),
		)
		return translateDBErr(err)
	}

	return nil
}

// FindByID resolves the showtime with its movie (read-through join).
func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.start_time, s.end_time, s.capacity, s.is_available,
		       s.created_at, s.created_by, s.updated_at, s.updated_by, s.deleted_at, s.deleted_by,
		       m.id, m.title, m.description, m.poster_url, m.genres, m.rate,
		       m.runtime_minutes, m.is_available
		FROM showtimes s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.id = $1
	`

	var showtime entity.Showtime
	var movie entity.Movie
	var genres []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Capacity,
		&showtime.IsAvailable,
		&showtime.CreatedAt,
		&showtime.CreatedBy,
		&showtime.UpdatedAt,
		&showtime.UpdatedBy,
		&showtime.DeletedAt,
		&showtime.DeletedBy,
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.PosterURL,
		&genres,
		&movie.Rate,
		&movie.RuntimeMinutes,
		&movie.IsAvailable,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	movie.Genres = stringsToGenres(genres)
	showtime.Movie = &movie
	return &showtime, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET start_time = $2, end_time = $3, capacity = $4, is_available = $5,
		    updated_at = $6, updated_by = $7, deleted_at = $8, deleted_by = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Capacity,
		showtime.IsAvailable,
		showtime.UpdatedAt,
		showtime.UpdatedBy,
		showtime.DeletedAt,
		showtime.DeletedBy,
	)

	if err != nil {
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtime.ID.String()),
		)
		return translateDBErr(err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", showtime.ID.String())
	}

	return nil
}

// FindUpcoming returns available showtimes starting at or after the
// filter window, sorted by start time ascending. The joined movie is
// projected down to the display subset (id, title, rate).
func (r *showtimeRepository) FindUpcoming(ctx context.Context, filter ShowtimeFilter, offset, limit int) ([]*entity.Showtime, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT s.id, s.start_time, s.end_time, s.capacity, s.is_available,
		       s.movie_id, m.title, m.rate
		FROM showtimes s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.is_available = true AND s.start_time >= $1
	`)

	args := []any{filter.From}
	argCount := 2

	if filter.To != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.start_time < $%d", argCount))
		args = append(args, *filter.To)
		argCount++
	}

	if filter.MovieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND s.movie_id = $%d", argCount))
		args = append(args, *filter.MovieID)
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY s.start_time ASC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find upcoming showtimes",
			zap.Error(err),
			zap.Time("from", filter.From),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find upcoming showtimes: %w", err)
	}
	defer rows.Close()

	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		var movie entity.Movie
		err := rows.Scan(
			&showtime.ID,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Capacity,
			&showtime.IsAvailable,
			&showtime.MovieID,
			&movie.Title,
			&movie.Rate,
		)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		movie.ID = showtime.MovieID
		showtime.Movie = &movie
		showtimes = append(showtimes, &showtime)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate showtime rows: %w", err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) CountUpcoming(ctx context.Context, filter ShowtimeFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT COUNT(*)
		FROM showtimes
		WHERE is_available = true AND start_time >= $1
	`)

	args := []any{filter.From}
	argCount := 2

	if filter.To != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND start_time < $%d", argCount))
		args = append(args, *filter.To)
		argCount++
	}

	if filter.MovieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND movie_id = $%d", argCount))
		args = append(args, *filter.MovieID)
	}

	var total int64
	if err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count upcoming showtimes",
			zap.Error(err),
			zap.Time("from", filter.From),
		)
		return 0, fmt.Errorf("count upcoming showtimes: %w", err)
	}

	return total, nil
}
