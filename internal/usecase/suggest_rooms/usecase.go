package suggest_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/fitness"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/ranking"
)

// UseCase use case подбора комнат под запрос встречи.
//
// Вычисление не имеет побочных эффектов и разделяемого состояния:
// его безопасно запускать параллельно для множества запросов.
// Результат никогда не кэшируется между запросами — журнал
// бронирований может измениться между вызовами, финальную проверку
// всё равно выполняет guard коммита.
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	defaultTopN int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	defaultTopN int,
	logger Logger,
) *UseCase {
	if defaultTopN <= 0 {
		defaultTopN = domain.DefaultTopN
	}
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		defaultTopN: defaultTopN,
		logger:      logger,
	}
}

// Execute выполняет use case подбора комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestRooms: attendees=%d, window=[%s, %s)",
		req.AttendeeCount, req.Start.Format("2006-01-02 15:04"), req.End.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных и сборка интервала
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SuggestRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем весь каталог: комнаты на обслуживании остаются в
	// полном списке с аннотацией недоступности
	rooms, err := uc.roomRepo.List(ctx, domain.RoomCatalogFilter{})
	if err != nil {
		uc.logger.Error("SuggestRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// Пустой каталог - пустая выдача, не ошибка
	if len(rooms) == 0 {
		uc.logger.Warn("SuggestRooms: room catalog is empty")
		return &Response{
			Interval:       interval,
			TopSuggestions: []domain.Suggestion{},
			AllRooms:       []domain.Suggestion{},
		}, nil
	}

	// 3. Загружаем блокирующие бронирования, пересекающие окно запроса
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.RoomBookingsFilter{
		WindowStart: &interval.Start,
		WindowEnd:   &interval.End,
	})
	if err != nil {
		uc.logger.Error("SuggestRooms: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Ранжируем все комнаты и вырезаем быструю выдачу
	fitReq := fitness.Request{
		AttendeeCount:    req.AttendeeCount,
		DesiredEquipment: req.DesiredEquipment,
	}

	all := ranking.Rank(fitReq, interval, rooms, bookings)

	topN := req.TopN
	if topN <= 0 {
		topN = uc.defaultTopN
	}
	top := ranking.TopN(all, topN)

	uc.logger.Info("SuggestRooms: ranked %d rooms, %d top picks, %d blocking bookings in window",
		len(all), len(top), len(bookings))

	return &Response{
		Interval:       interval,
		TopSuggestions: top,
		AllRooms:       all,
	}, nil
}
