// Package availability реализует чистую проверку доступности комнаты
// на запрошенный интервал. Никаких обращений к хранилищу: вызывающая
// сторона передаёт заранее отфильтрованные по комнате бронирования,
// что делает вычисление детерминированным и тестируемым.
package availability

import (
	"sort"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// Evaluate определяет, свободна ли комната на запрошенный интервал.
//
// Комната недоступна, если:
//   - она на обслуживании или выключена (синтетический псевдоконфликт
//     без ссылки на бронирование);
//   - хотя бы одно блокирующее бронирование пересекается с интервалом.
//
// Бронирования просматриваются в хронологическом порядке по началу,
// побеждает первое пересечение: пользователю показывается ближайший
// по времени конфликт. Отменённые бронирования не участвуют.
// Отсутствие данных трактуется как "свободно".
func Evaluate(room *domain.Room, requested domain.TimeInterval, bookings []*domain.Booking) domain.AvailabilityResult {
	if room.IsUnderMaintenance {
		return domain.AvailabilityResult{
			Room:        room,
			IsAvailable: false,
			Conflict: &domain.Conflict{
				Reason:   domain.ConflictReasonMaintenance,
				Interval: requested,
			},
		}
	}

	if !room.IsActive {
		return domain.AvailabilityResult{
			Room:        room,
			IsAvailable: false,
			Conflict: &domain.Conflict{
				Reason:   domain.ConflictReasonInactive,
				Interval: requested,
			},
		}
	}

	if conflict := firstOverlap(requested, bookings); conflict != nil {
		return domain.AvailabilityResult{
			Room:        room,
			IsAvailable: false,
			Conflict:    conflict,
		}
	}

	return domain.AvailabilityResult{
		Room:        room,
		IsAvailable: true,
	}
}

// firstOverlap возвращает первый по хронологии блокирующий конфликт
// или nil, если пересечений нет
func firstOverlap(requested domain.TimeInterval, bookings []*domain.Booking) *domain.Conflict {
	// Копируем, чтобы не переупорядочивать слайс вызывающей стороны
	ordered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsBlocking() {
			ordered = append(ordered, b)
		}
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Interval.Start.Equal(ordered[j].Interval.Start) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].Interval.Start.Before(ordered[j].Interval.Start)
	})

	for _, b := range ordered {
		// Полуоткрытые интервалы: граничащие бронирования не конфликтуют
		if b.Interval.Overlaps(requested) {
			return &domain.Conflict{
				Reason:       domain.ConflictReasonBooked,
				BookingID:    b.ID,
				BookingTitle: b.Title,
				Interval:     b.Interval,
			}
		}
	}

	return nil
}
