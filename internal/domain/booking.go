package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParticipantRole роль участника встречи
type ParticipantRole string

const (
	RoleOrganizer ParticipantRole = "organizer"
	RoleRequired  ParticipantRole = "required"
	RoleOptional  ParticipantRole = "optional"
)

// BookingPrivacy видимость бронирования для остальных пользователей
type BookingPrivacy string

const (
	PrivacyPublic  BookingPrivacy = "public"
	PrivacyPrivate BookingPrivacy = "private"
)

// Booking represents a room reservation in the system
type Booking struct {
	ID       int64
	RoomID   int64
	UserID   int64 // организатор (создатель бронирования)
	Title    string
	Interval TimeInterval
	Status   BookingStatus
	Privacy  BookingPrivacy

	// Правило повторения хранится как непрозрачная строка (например, RRULE)
	// и никогда не разворачивается сервисом
	RecurrenceRule *string

	Participants []Participant

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Participant участник бронирования
type Participant struct {
	UserID int64
	Role   ParticipantRole
}

// IsBlocking returns true if the booking reserves its slot for conflict
// detection. PENDING bookings are provisional holds and block the slot
// the same way CONFIRMED ones do; only CANCELLED bookings never conflict.
func (b *Booking) IsBlocking() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// RoomBookingsFilter фильтр для получения бронирований по комнате и окну времени
type RoomBookingsFilter struct {
	RoomID          *int64     // Фильтр по комнате (nil - все комнаты)
	WindowStart     *time.Time // Начало окна (опционально)
	WindowEnd       *time.Time // Конец окна (опционально)
	IncludeInactive bool       // Включать ли отменённые бронирования
}
