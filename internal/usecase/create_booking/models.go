package create_booking

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64                // Организатор (из заголовка аутентификации)
	RoomID         int64                // Выбранная комната
	Title          string               // Название встречи (обязательно)
	Start          time.Time            // Начало интервала (UTC)
	End            time.Time            // Конец интервала (UTC), строго позже Start
	Participants   []domain.Participant // Участники встречи
	Privacy        domain.BookingPrivacy
	RecurrenceRule *string // Непрозрачное правило повторения, не разворачивается
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	RoomID         int64
	UserID         int64
	Title          string
	Interval       domain.TimeInterval
	Status         string
	Privacy        string
	Participants   []domain.Participant
	RecurrenceRule *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
