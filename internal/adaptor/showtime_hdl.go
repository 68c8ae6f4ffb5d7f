package adaptor

import (
	"encoding/json"
	"net/http"

	"theater-api/internal/dto/request"
	"theater-api/internal/usecase"
	"theater-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetShowtimes handles GET /api/showtimes
func (h *ShowtimeHandler) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	req, err := parseDatePagination(r)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtimes")
		return
	}

	showtimes, err := h.service.GetShowtimes(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtimesByMovie handles GET /api/showtimes/movie/{movieId}
func (h *ShowtimeHandler) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")

	req, err := parseDatePagination(r)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtimes by movie")
		return
	}

	showtimes, err := h.service.GetShowtimesByMovie(r.Context(), movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtimes by movie")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowtimeByID handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtimeByID(w http.ResponseWriter, r *http.Request) {
	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.GetShowtimeByID(r.Context(), showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime by ID")
		return
	}

	utils.ResponseSuccess(w, "Showtime retrieved successfully", showtime)
}

// CreateShowtime handles POST /api/showtimes/movie/{movieId} (admin only)
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentity(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID := chi.URLParam(r, "movieId")

	var req request.ShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), identity.ID, movieID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime created successfully", showtime)
}

// UpdateShowtime handles PATCH /api/showtimes/{id} (admin only)
func (h *ShowtimeHandler) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentity(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	showtimeID := chi.URLParam(r, "id")

	var req request.ShowtimeUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.UpdateShowtime(r.Context(), identity.ID, showtimeID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime updated successfully", showtime)
}

// RetireShowtime handles DELETE /api/showtimes/{id} (admin only)
func (h *ShowtimeHandler) RetireShowtime(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentity(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	showtimeID := chi.URLParam(r, "id")

	showtime, err := h.service.RetireShowtime(r.Context(), identity.ID, showtimeID)
	if err != nil {
		writeServiceError(w, h.log, err, "retire showtime")
		return
	}

	utils.ResponseSuccess(w, "Showtime retired successfully", showtime)
}
