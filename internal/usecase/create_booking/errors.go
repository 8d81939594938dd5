package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomUnavailable возвращается, когда комната выключена или на
	// обслуживании: календарь при этом даже не проверяется
	ErrRoomUnavailable = errors.New("create_booking: room is not bookable")

	// ErrRoomConflict возвращается, когда выбранная комната занята на
	// запрошенный интервал в момент коммита. Ожидаемая и восстановимая
	// ошибка: клиент должен заново запросить подбор, а не повторять тот
	// же запрос на ту же комнату и окно.
	ErrRoomConflict = errors.New("create_booking: room is already booked for this interval")

	// ErrCapacityExceeded возвращается, когда участников больше, чем
	// вмещает комната
	ErrCapacityExceeded = errors.New("create_booking: room capacity exceeded")

	// ErrOrganizerNotFound возвращается, когда организатор не существует
	ErrOrganizerNotFound = errors.New("create_booking: organizer not found")

	// ErrInvalidInterval возвращается при некорректном временном окне
	ErrInvalidInterval = errors.New("create_booking: invalid time interval")

	// ErrBusy возвращается, когда критическая секция коммита не
	// завершилась в отведённый дедлайн или исчерпала повторы
	// сериализации. Безопасно повторить ограниченное число раз с backoff.
	ErrBusy = errors.New("create_booking: commit section busy, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несёт детали конфликта: какое бронирование блокирует
// слот и на каком окне. Клиенту этого достаточно, чтобы объяснить
// пользователю причину отказа и перезапустить подбор.
type ConflictError struct {
	Conflict domain.Conflict
}

// Error возвращает текстовое описание конфликта
func (e *ConflictError) Error() string {
	if e.Conflict.BookingID != 0 {
		return fmt.Sprintf("create_booking: conflict with booking id=%d (%q) on [%s, %s)",
			e.Conflict.BookingID,
			e.Conflict.BookingTitle,
			e.Conflict.Interval.Start.Format("2006-01-02 15:04"),
			e.Conflict.Interval.End.Format("2006-01-02 15:04"),
		)
	}
	return fmt.Sprintf("create_booking: room unavailable (%s)", e.Conflict.Reason)
}

// Unwrap позволяет errors.Is(err, ErrRoomConflict)
func (e *ConflictError) Unwrap() error {
	return ErrRoomConflict
}
