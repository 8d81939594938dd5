package check_room_availability

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// Request модель запроса проверки доступности конкретной комнаты.
// Используется мастером бронирования, когда комната уже выбрана
// (например, по deep link): шаг подбора пропускается, подтверждается
// только доступность.
type Request struct {
	RoomID        int64
	Start         time.Time
	End           time.Time
	AttendeeCount int // 0 - оценка соответствия не нужна
}

// Response модель ответа с доступностью и, при наличии участников,
// оценкой соответствия комнаты
type Response struct {
	Room        *domain.Room
	Interval    domain.TimeInterval
	IsAvailable bool
	Conflict    *domain.Conflict // присутствует тогда и только тогда, когда комната занята

	// Оценка заполняется, только если в запросе указано число участников
	MatchScore *int
	Category   *domain.RoomCategory
}
