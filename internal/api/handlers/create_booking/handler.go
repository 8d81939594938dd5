package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MRB-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRB-RoomBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/MRB-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRoomNotFound       = "комната не найдена"
	msgOrganizerNotFound  = "организатор не найден"
	msgRoomUnavailable    = "комната недоступна для бронирования"
	msgRoomConflict       = "комната уже занята на выбранный интервал"
	msgCapacityExceeded   = "количество участников превышает вместимость комнаты"
	msgInvalidInterval    = "некорректный временной интервал"
	msgInvalidInput       = "некорректные данные бронирования"
	msgBusy               = "сервис перегружен, повторите попытку позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Конфликт несёт детали блокирующего бронирования, отдаем их клиенту
		var conflictErr *createBooking.ConflictError
		if errors.As(err, &conflictErr) {
			h.logger.Warn("POST /bookings - Room conflict: user_id=%d, room_id=%d, reason=%s",
				userID, req.RoomID, conflictErr.Conflict.Reason)
			handlers.RespondJSON(w, http.StatusConflict, FromConflictError(msgRoomConflict, conflictErr))
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrOrganizerNotFound):
			h.logger.Warn("POST /bookings - Organizer not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgOrganizerNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrRoomConflict):
			h.logger.Warn("POST /bookings - Room conflict: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomConflict)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrBusy):
			h.logger.Warn("POST /bookings - Commit section busy: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgBusy)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
