package wire

import (
	"theater-api/internal/adaptor"
	"theater-api/internal/data/entity"
	"theater-api/pkg/middleware"
	"theater-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(string(entity.RoleAdmin), log))

		r.Get("/", userHandler.GetUsers)
		r.Patch("/promote/{id}", userHandler.PromoteUser)
	})
}
