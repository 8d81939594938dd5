package get_user_bookings

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

// BookingDTO бронирование в списке
type BookingDTO struct {
	ID                 int64   `json:"id"`
	RoomID             int64   `json:"roomId"`
	UserID             int64   `json:"userId"`
	Title              string  `json:"title"`
	Start              string  `json:"start"`
	End                string  `json:"end"`
	Status             string  `json:"status"`
	Privacy            string  `json:"privacy"`
	RecurrenceRule     *string `json:"recurrenceRule,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CreatedAt          string  `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingDTO, len(resp.Bookings))
	for i, b := range resp.Bookings {
		bookings[i] = BookingDTO{
			ID:                 b.ID,
			RoomID:             b.RoomID,
			UserID:             b.UserID,
			Title:              b.Title,
			Start:              b.Start.Format(time.RFC3339),
			End:                b.End.Format(time.RFC3339),
			Status:             b.Status,
			Privacy:            b.Privacy,
			RecurrenceRule:     b.RecurrenceRule,
			CancellationReason: b.CancellationReason,
			CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: bookings}
}
