package check_room_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/availability"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/fitness"
	roomRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case проверки доступности одной комнаты.
// Результат - снимок на момент запроса: финальную проверку при
// создании бронирования всё равно выполняет guard коммита.
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckRoomAvailability: room=%d, window=[%s, %s)",
		req.RoomID, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckRoomAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckRoomAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckRoomAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Загружаем блокирующие бронирования комнаты в окне запроса
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:      &req.RoomID,
		WindowStart: &interval.Start,
		WindowEnd:   &interval.End,
	})
	if err != nil {
		uc.logger.Error("CheckRoomAvailability: failed to get bookings for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Оцениваем доступность
	result := availability.Evaluate(room, interval, bookings)

	resp := &Response{
		Room:        room,
		Interval:    interval,
		IsAvailable: result.IsAvailable,
		Conflict:    result.Conflict,
	}

	// 5. Оценка соответствия - только при указанном числе участников
	if req.AttendeeCount > 0 {
		score, category := fitness.Score(room, fitness.Request{AttendeeCount: req.AttendeeCount})
		resp.MatchScore = &score
		resp.Category = &category
	}

	uc.logger.Info("CheckRoomAvailability: room=%d available=%v", req.RoomID, result.IsAvailable)

	return resp, nil
}

// validateRequest валидирует входные данные и собирает интервал запроса
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.RoomID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.AttendeeCount < 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: attendeeCount must not be negative", ErrInvalidInput)
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return interval, nil
}
