package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/availability"
	bookingRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/room"
	userClient "github.com/m04kA/MRB-RoomBookingService/internal/integrations/userservice"
	"github.com/m04kA/MRB-RoomBookingService/pkg/txmanager"
)

// UseCase guard коммита бронирования.
//
// Предложения подбора - read-only снимки, устаревающие между показом
// и отправкой формы. Guard повторяет проверку доступности для
// конкретной комнаты и интервала внутри той же сериализуемой
// транзакции, что и вставка, непосредственно перед коммитом:
//
//	REQUESTED -> VALIDATED  повторная проверка не нашла конфликта
//	REQUESTED -> REJECTED   конфликт; клиент получает детали блокирующего
//	                        бронирования и перезапускает подбор
//	VALIDATED -> COMMITTED  вставка зафиксирована
//
// Частичного успеха нет: бронирование и участники сохраняются в одной
// транзакции, при любой ошибке всё откатывается.
type UseCase struct {
	bookingRepo   BookingRepository
	roomRepo      RoomRepository
	userClient    UserServiceClient
	txManager     TransactionManager
	commitTimeout time.Duration
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	commitTimeout time.Duration,
	logger Logger,
) *UseCase {
	if commitTimeout <= 0 {
		commitTimeout = 5 * time.Second
	}
	return &UseCase{
		bookingRepo:   bookingRepo,
		roomRepo:      roomRepo,
		userClient:    userClient,
		txManager:     txManager,
		commitTimeout: commitTimeout,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// WithTimeProvider подменяет источник текущего времени (для тестирования)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%d, window=[%s, %s)",
		req.UserID, req.RoomID, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно, целиком лежащее в прошлом, не бронируется
	if !interval.End.After(uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: window is entirely in the past")
		return nil, fmt.Errorf("%w: window is in the past", ErrInvalidInterval)
	}

	// 3. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Комната на обслуживании или выключена - календарь не проверяем
	if !room.IsBookable() {
		uc.logger.Warn("CreateBooking: room id=%d is not bookable (active=%v, maintenance=%v)",
			room.ID, room.IsActive, room.IsUnderMaintenance)
		return nil, ErrRoomUnavailable
	}

	// 5. Проверяем вместимость
	if err := validateCapacity(room, req); err != nil {
		uc.logger.Warn("CreateBooking: capacity check failed for room id=%d: %v", room.ID, err)
		return nil, err
	}

	// 6. Проверяем существование организатора. При недоступности
	// UserService продолжаем без обогащения: деградация сервиса
	// профилей не должна блокировать бронирование.
	if _, err := uc.userClient.GetUserWithGracefulDegradation(ctx, req.UserID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: organizer id=%d not found", req.UserID)
			return nil, ErrOrganizerNotFound
		}
		uc.logger.Warn("CreateBooking: user service degraded, proceeding without profile: %v", err)
	}

	// 7. Критическая секция: повторная проверка и вставка в одной
	// сериализуемой транзакции.
	//
	// Дедлайн отвязан от отмены входящего запроса: начатый коммит
	// доводится до COMMITTED или REJECTED, а не бросается на середине.
	// Ограничен он только собственным таймаутом, чтобы секция не
	// ждала блокировку бесконечно.
	commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.commitTimeout)
	defer cancel()

	var result *domain.Booking

	err = uc.txManager.DoSerializable(commitCtx, func(txCtx context.Context) error {
		// 7.1. Читаем блокирующие бронирования комнаты в окне запроса
		// с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.RoomBookingsFilter{
			RoomID:      &req.RoomID,
			WindowStart: &interval.Start,
			WindowEnd:   &interval.End,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Повторная проверка доступности тем же вычислением,
		// что и в подборе
		evaluation := availability.Evaluate(room, interval, bookings)
		if !evaluation.IsAvailable {
			uc.logger.Warn("CreateBooking: conflict for room id=%d: booking id=%d",
				room.ID, evaluation.Conflict.BookingID)
			return &ConflictError{Conflict: *evaluation.Conflict}
		}

		// 7.3. Вставляем бронирование вместе с участниками
		booking := &domain.Booking{
			RoomID:         req.RoomID,
			UserID:         req.UserID,
			Title:          req.Title,
			Interval:       interval,
			Status:         domain.StatusConfirmed,
			Privacy:        req.Privacy,
			RecurrenceRule: req.RecurrenceRule,
			Participants:   req.Participants,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Exclusion constraint - финальный арбитр: он отлавливает
			// гонку, которую успела пропустить проверка выше
			if errors.Is(err, bookingRepo.ErrIntervalTaken) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected insert for room id=%d", room.ID)
				return &ConflictError{Conflict: domain.Conflict{
					Reason:   domain.ConflictReasonBooked,
					Interval: interval,
				}}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapCommitError(err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for room id=%d", result.ID, room.ID)

	return &Response{
		ID:             result.ID,
		RoomID:         result.RoomID,
		UserID:         result.UserID,
		Title:          result.Title,
		Interval:       result.Interval,
		Status:         string(result.Status),
		Privacy:        string(result.Privacy),
		Participants:   result.Participants,
		RecurrenceRule: result.RecurrenceRule,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// mapCommitError переводит ошибки критической секции в ошибки usecase
func (uc *UseCase) mapCommitError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		uc.logger.Warn("CreateBooking: commit section deadline exceeded")
		return fmt.Errorf("%w: %v", ErrBusy, err)
	case errors.Is(err, txmanager.ErrSerializationFailure):
		uc.logger.Warn("CreateBooking: serialization retries exhausted")
		return fmt.Errorf("%w: %v", ErrBusy, err)
	default:
		return err
	}
}
