package wire

import (
	"theater-api/internal/adaptor"
	"theater-api/internal/data/entity"
	"theater-api/pkg/middleware"
	"theater-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/movies", func(r chi.Router) {
		// Every movie route requires an authenticated caller
		r.Use(middleware.Authenticate(config.JWT.Secret, log))

		r.Get("/", movieHandler.GetMovies)
		r.Get("/search/{term}", movieHandler.SearchMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)

		// Mutations are admin-gated
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

			r.Post("/", movieHandler.CreateMovie)
			r.Patch("/{id}", movieHandler.UpdateMovie)
			r.Delete("/{id}", movieHandler.RetireMovie)
		})
	})
}
