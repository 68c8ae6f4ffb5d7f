package usecase

import (
	"theater-api/internal/data/repository"
	"theater-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Movie    MovieService
	Showtime ShowtimeService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo.User, log),
		Movie:    NewMovieService(repo, log),
		Showtime: NewShowtimeService(repo, log),
	}
}
