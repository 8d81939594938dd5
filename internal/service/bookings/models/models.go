// Package models модели запросов и ответов сервиса бронирований
package models

import (
	"fmt"
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // Опциональный фильтр по статусу
}

// GetRoomBookingsRequest запрос журнала бронирований комнаты за окно времени
type GetRoomBookingsRequest struct {
	RoomID          int64
	WindowStart     *time.Time
	WindowEnd       *time.Time
	IncludeInactive bool
}

// CancelBookingRequest запрос отмены бронирования
type CancelBookingRequest struct {
	UserID int64
	Reason string
}

// ParticipantResponse участник бронирования
type ParticipantResponse struct {
	UserID int64
	Role   string
}

// BookingResponse бронирование в ответе сервиса
type BookingResponse struct {
	ID             int64
	RoomID         int64
	UserID         int64
	Title          string
	Start          time.Time
	End            time.Time
	Status         string
	Privacy        string
	Participants   []ParticipantResponse
	RecurrenceRule *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	participants := make([]ParticipantResponse, len(b.Participants))
	for i, p := range b.Participants {
		participants[i] = ParticipantResponse{
			UserID: p.UserID,
			Role:   string(p.Role),
		}
	}

	return &BookingResponse{
		ID:                 b.ID,
		RoomID:             b.RoomID,
		UserID:             b.UserID,
		Title:              b.Title,
		Start:              b.Interval.Start,
		End:                b.Interval.End,
		Status:             string(b.Status),
		Privacy:            string(b.Privacy),
		Participants:       participants,
		RecurrenceRule:     b.RecurrenceRule,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку статуса в доменный тип
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled:
		return domain.BookingStatus(status), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", status)
	}
}
