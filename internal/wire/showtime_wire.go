package wire

import (
	"theater-api/internal/adaptor"
	"theater-api/internal/data/entity"
	"theater-api/pkg/middleware"
	"theater-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(r chi.Router, showtimeHandler *adaptor.ShowtimeHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/showtimes", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", showtimeHandler.GetShowtimes)
		r.Get("/movie/{movieId}", showtimeHandler.GetShowtimesByMovie)
		r.Get("/{id}", showtimeHandler.GetShowtimeByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

			r.Post("/movie/{movieId}", showtimeHandler.CreateShowtime)
			r.Patch("/{id}", showtimeHandler.UpdateShowtime)
			r.Delete("/{id}", showtimeHandler.RetireShowtime)
		})
	})
}
