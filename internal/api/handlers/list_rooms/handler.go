package list_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/MRB-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/rooms"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/rooms/models"
)

const (
	msgInvalidSiteID = "некорректный ID площадки"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?siteId=...&onlyBookable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRoomsRequest{
		OnlyBookable: query.Get("onlyBookable") == "true",
	}

	if raw := query.Get("siteId"); raw != "" {
		siteID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /rooms - Invalid site ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSiteID)
			return
		}
		req.SiteID = &siteID
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidSiteID)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
