package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRB-RoomBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/MRB-RoomBookingService/internal/usecase/check_room_availability"
)

const (
	msgInvalidRoomID     = "некорректный ID комнаты"
	msgMissingWindow     = "параметры start и end обязательны"
	msgInvalidTimeFormat = "некорректный формат времени, ожидается RFC3339"
	msgInvalidAttendees  = "некорректное число участников"
	msgInvalidInterval   = "некорректный временной интервал"
	msgRoomNotFound      = "комната не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?start=...&end=...&attendees=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()

	startStr := query.Get("start")
	endStr := query.Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /rooms/{id}/availability - Missing window: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	// attendees опционален: без него возвращается только доступность
	attendeeCount := 0
	if raw := query.Get("attendees"); raw != "" {
		attendeeCount, err = strconv.Atoi(raw)
		if err != nil || attendeeCount < 0 {
			handlers.RespondBadRequest(w, msgInvalidAttendees)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		RoomID:        roomID,
		Start:         start,
		End:           end,
		AttendeeCount: attendeeCount,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInterval):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid interval: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidAttendees)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Checked: room_id=%d, available=%t", roomID, result.IsAvailable)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
