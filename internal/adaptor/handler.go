package adaptor

import (
	"net/http"
	"time"

	"theater-api/internal/apperr"
	"theater-api/internal/dto/request"
	"theater-api/internal/usecase"
	"theater-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Movie    *MovieHandler
	Showtime *ShowtimeHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Movie:    NewMovieHandler(service.Movie, log),
		Showtime: NewShowtimeHandler(service.Showtime, log),
	}
}

// writeServiceError maps a service failure onto the response through
// the error taxonomy. Internal failures are logged in full but reach
// the caller as a generic message.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	status := apperr.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.Int("status", status))
	utils.ResponseError(w, status, err.Error(), nil)
}

// parsePagination reads limit/page query params with the listing
// contract defaults.
func parsePagination(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.PaginatedRequest{
		Page:  utils.ParseInt(query.Get("page"), 1),
		Limit: utils.ParseInt(query.Get("limit"), 10),
	}
}

// parseDatePagination additionally reads the optional startDate filter
// as a calendar date.
func parseDatePagination(r *http.Request) (request.DatePaginatedRequest, error) {
	req := request.DatePaginatedRequest{PaginatedRequest: parsePagination(r)}

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return req, apperr.Validation("invalid startDate %q, expected format 2006-01-02", raw)
		}
		req.StartDate = &date
	}

	return req, nil
}
