package adaptor

import (
	"net/http"

	"theater-api/internal/usecase"
	"theater-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users (admin only)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	req := parsePagination(r)

	users, err := h.service.GetAllUsers(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// PromoteUser handles PATCH /api/users/promote/{id} (admin only)
func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	user, err := h.service.PromoteUserToAdmin(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.log, err, "promote user")
		return
	}

	utils.ResponseSuccess(w, "User promoted successfully", user)
}
