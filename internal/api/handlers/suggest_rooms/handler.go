package suggest_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRB-RoomBookingService/internal/api/handlers"
	suggestRooms "github.com/m04kA/MRB-RoomBookingService/internal/usecase/suggest_rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC3339"
	msgInvalidInterval    = "некорректный временной интервал"
	msgInvalidInput       = "некорректные параметры подбора"
)

type Handler struct {
	useCase SuggestRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/suggestions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SuggestRoomsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/suggestions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rooms/suggestions - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestRooms.ErrInvalidInterval):
			h.logger.Warn("POST /rooms/suggestions - Invalid interval: attendees=%d", req.AttendeeCount)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, suggestRooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms/suggestions - Invalid input: attendees=%d", req.AttendeeCount)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms/suggestions - Failed to rank rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /rooms/suggestions - Suggestions built: attendees=%d, top=%d, total=%d",
		req.AttendeeCount, len(response.TopSuggestions), len(response.AllRooms))
	handlers.RespondJSON(w, http.StatusOK, response)
}
