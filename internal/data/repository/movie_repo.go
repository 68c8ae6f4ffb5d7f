package repository

import (
	"context"
	"fmt"

	"theater-api/internal/data/entity"
	"theater-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	FindAvailable(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
	CountAvailable(ctx context.Context) (int64, error)
	SearchByTerm(ctx context.Context, term string, offset, limit int) ([]*entity.Movie, error)
	CountByTerm(ctx context.Context, term string) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, description, poster_url, genres, rate,
		                    runtime_minutes, is_available, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.PosterURL,
		genresToStrings(movie.Genres),
		movie.Rate,
		movie.RuntimeMinutes,
		movie.IsAvailable,
		movie.CreatedAt,
		movie.CreatedBy,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return translateDBErr(err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster_url, genres, rate, runtime_minutes,
		       is_available, created_at, created_by, updated_at, updated_by,
		       deleted_at, deleted_by
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	var genres []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.PosterURL,
		&genres,
		&movie.Rate,
		&movie.RuntimeMinutes,
		&movie.IsAvailable,
		&movie.CreatedAt,
		&movie.CreatedBy,
		&movie.UpdatedAt,
		&movie.UpdatedBy,
		&movie.DeletedAt,
		&movie.DeletedBy,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	movie.Genres = stringsToGenres(genres)
	return &movie, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, poster_url = $4, genres = $5, rate = $6,
		    runtime_minutes = $7, is_available = $8, updated_at = $9, updated_by = $10,
		    deleted_at = $11, deleted_by = $12
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.PosterURL,
		genresToStrings(movie.Genres),
		movie.Rate,
		movie.RuntimeMinutes,
		movie.IsAvailable,
		movie.UpdatedAt,
		movie.UpdatedBy,
		movie.DeletedAt,
		movie.DeletedBy,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return translateDBErr(err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("movie %s not found", movie.ID.String())
	}

	return nil
}

func (r *movieRepository) FindAvailable(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster_url, genres, rate, runtime_minutes
		FROM movies
		WHERE is_available = true
		ORDER BY title
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find available movies",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find available movies: %w", err)
	}
	defer rows.Close()

	return scanMovieRows(rows)
}

func (r *movieRepository) CountAvailable(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies WHERE is_available = true`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return total, nil
}

// SearchByTerm matches case-insensitively on title substring or exact
// genre, intersected with availability.
func (r *movieRepository) SearchByTerm(ctx context.Context, term string, offset, limit int) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, poster_url, genres, rate, runtime_minutes
		FROM movies
		WHERE (title ILIKE '%' || $1 || '%' OR $1 = ANY(genres))
		  AND is_available = true
		ORDER BY title
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, term, limit, offset)
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, translateDBErr(err)
	}
	defer rows.Close()

	return scanMovieRows(rows)
}

func (r *movieRepository) CountByTerm(ctx context.Context, term string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM movies
		WHERE (title ILIKE '%' || $1 || '%' OR $1 = ANY(genres))
		  AND is_available = true
	`

	var total int64
	if err := r.db.QueryRow(ctx, query, term).Scan(&total); err != nil {
		r.log.Error("Failed to count movies by term",
			zap.Error(err),
			zap.String("term", term),
		)
		return 0, translateDBErr(err)
	}

	return total, nil
}

func scanMovieRows(rows pgx.Rows) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		var genres []string
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.PosterURL,
			&genres,
			&movie.Rate,
			&movie.RuntimeMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movie.Genres = stringsToGenres(genres)
		movie.IsAvailable = true
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}

	return movies, nil
}

func genresToStrings(genres []entity.Genre) []string {
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = string(g)
	}
	return out
}

func stringsToGenres(genres []string) []entity.Genre {
	out := make([]entity.Genre, len(genres))
	for i, g := range genres {
		out[i] = entity.Genre(g)
	}
	return out
}
