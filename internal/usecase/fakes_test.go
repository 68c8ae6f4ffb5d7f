package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"theater-api/internal/apperr"
	"theater-api/internal/data/entity"
	"theater-api/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the store contract the
// services rely on, including the duplicate-key rejection for
// (movie, start_time) and email uniqueness.

type movieRepoFake struct {
	movies map[uuid.UUID]*entity.Movie
}

func newMovieRepoFake() *movieRepoFake {
	return &movieRepoFake{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *movieRepoFake) Create(_ context.Context, movie *entity.Movie) error {
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *movieRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (f *movieRepoFake) Update(_ context.Context, movie *entity.Movie) error {
	copied := *movie
	f.movies[movie.ID] = &copied
	return nil
}

func (f *movieRepoFake) FindAvailable(_ context.Context, offset, limit int) ([]*entity.Movie, error) {
	return paginateMovies(f.available(), offset, limit), nil
}

func (f *movieRepoFake) CountAvailable(_ context.Context) (int64, error) {
	return int64(len(f.available())), nil
}

func (f *movieRepoFake) SearchByTerm(_ context.Context, term string, offset, limit int) ([]*entity.Movie, error) {
	return paginateMovies(f.matching(term), offset, limit), nil
}

func (f *movieRepoFake) CountByTerm(_ context.Context, term string) (int64, error) {
	return int64(len(f.matching(term))), nil
}

func (f *movieRepoFake) available() []*entity.Movie {
	var out []*entity.Movie
	for _, m := range f.movies {
		if m.IsAvailable {
			copied := *m
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

func (f *movieRepoFake) matching(term string) []*entity.Movie {
	var out []*entity.Movie
	for _, m := range f.available() {
		if containsFold(m.Title, term) {
			out = append(out, m)
			continue
		}
		for _, g := range m.Genres {
			if string(g) == term {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func paginateMovies(movies []*entity.Movie, offset, limit int) []*entity.Movie {
	if offset >= len(movies) {
		return nil
	}
	end := offset + limit
	if end > len(movies) {
		end = len(movies)
	}
	return movies[offset:end]
}

type showtimeRepoFake struct {
	showtimes map[uuid.UUID]*entity.Showtime
}

func newShowtimeRepoFake() *showtimeRepoFake {
	return &showtimeRepoFake{showtimes: make(map[uuid.UUID]*entity.Showtime)}
}

func (f *showtimeRepoFake) Create(_ context.Context, showtime *entity.Showtime) error {
	for _, existing := range f.showtimes {
		if existing.MovieID == showtime.MovieID && existing.StartTime.Equal(showtime.StartTime) {
			return apperr.Conflict("Key (movie_id, start_time)=(%s, %s) already exists",
				showtime.MovieID, showtime.StartTime)
		}
	}
	copied := *showtime
	f.showtimes[showtime.ID] = &copied
	return nil
}

func (f *showtimeRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	showtime, ok := f.showtimes[id]
	if !ok {
		return nil, nil
	}
	copied := *showtime
	return &copied, nil
}

func (f *showtimeRepoFake) Update(_ context.Context, showtime *entity.Showtime) error {
	copied := *showtime
	f.showtimes[showtime.ID] = &copied
	return nil
}

func (f *showtimeRepoFake) FindUpcoming(_ context.Context, filter repository.ShowtimeFilter, offset, limit int) ([]*entity.Showtime, error) {
	matched := f.matching(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *showtimeRepoFake) CountUpcoming(_ context.Context, filter repository.ShowtimeFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *showtimeRepoFake) matching(filter repository.ShowtimeFilter) []*entity.Showtime {
	var out []*entity.Showtime
	for _, s := range f.showtimes {
		if !s.IsAvailable || s.StartTime.Before(filter.From) {
			continue
		}
		if filter.To != nil && !s.StartTime.Before(*filter.To) {
			continue
		}
		if filter.MovieID != nil && s.MovieID != *filter.MovieID {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out
}

type userRepoFake struct {
	users map[uuid.UUID]*entity.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{users: make(map[uuid.UUID]*entity.User)}
}

func (f *userRepoFake) Create(_ context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperr.Conflict("Key (email)=(%s) already exists", user.Email)
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *userRepoFake) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *userRepoFake) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *userRepoFake) UpdateRoles(_ context.Context, id uuid.UUID, roles []entity.Role, updatedAt time.Time) error {
	user, ok := f.users[id]
	if !ok {
		return apperr.NotFound("user %s not found", id)
	}
	user.Roles = append([]entity.Role(nil), roles...)
	user.UpdatedAt = &updatedAt
	return nil
}

func (f *userRepoFake) FindAll(_ context.Context, offset, limit int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		copied := *u
		copied.PasswordHash = ""
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	end := offset + limit
	if end > len(out) {
		end = len(out)
	}
	return out[offset:end], nil
}

func (f *userRepoFake) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func testRepo() (*repository.Repository, *movieRepoFake, *showtimeRepoFake, *userRepoFake) {
	movies := newMovieRepoFake()
	showtimes := newShowtimeRepoFake()
	users := newUserRepoFake()

	repo := &repository.Repository{
		User:     users,
		Movie:    movies,
		Showtime: showtimes,
	}
	return repo, movies, showtimes, users
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
