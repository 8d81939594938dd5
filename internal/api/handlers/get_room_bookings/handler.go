package get_room_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRB-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRB-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

const (
	msgInvalidRoomID     = "некорректный ID комнаты"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC3339"
	msgInvalidTimeRange  = "некорректный временной диапазон"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/bookings?from=...&to=...&includeCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	viewerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /rooms/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	req := &models.GetRoomBookingsRequest{
		RoomID:          roomID,
		IncludeInactive: query.Get("includeCancelled") == "true",
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
		req.WindowStart = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)
			return
		}
		req.WindowEnd = &to
	}

	result, err := h.service.GetRoomBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /rooms/{id}/bookings - Invalid time range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/bookings - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		default:
			h.logger.Error("GET /rooms/{id}/bookings - Failed to get bookings: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/bookings - Bookings retrieved: room_id=%d, count=%d",
		roomID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result, viewerID))
}
