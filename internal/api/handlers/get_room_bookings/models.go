package get_room_bookings

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

// BookingDTO запись календаря комнаты.
// Для чужих приватных встреч название скрывается на уровне handler.
type BookingDTO struct {
	ID      int64  `json:"id"`
	RoomID  int64  `json:"roomId"`
	UserID  int64  `json:"userId"`
	Title   string `json:"title"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Status  string `json:"status"`
	Privacy string `json:"privacy"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}

const hiddenTitle = "Занято"

// FromServiceResponse конвертирует ответ сервиса в HTTP response.
// viewerID нужен, чтобы скрыть названия чужих приватных встреч:
// слот виден как занятый, детали не раскрываются.
func FromServiceResponse(resp *models.BookingListResponse, viewerID int64) *BookingListResponse {
	bookings := make([]BookingDTO, len(resp.Bookings))
	for i, b := range resp.Bookings {
		title := b.Title
		if b.Privacy == "private" && !canSeeDetails(&b, viewerID) {
			title = hiddenTitle
		}

		bookings[i] = BookingDTO{
			ID:      b.ID,
			RoomID:  b.RoomID,
			UserID:  b.UserID,
			Title:   title,
			Start:   b.Start.Format(time.RFC3339),
			End:     b.End.Format(time.RFC3339),
			Status:  b.Status,
			Privacy: b.Privacy,
		}
	}
	return &BookingListResponse{Bookings: bookings}
}

func canSeeDetails(b *models.BookingResponse, viewerID int64) bool {
	if b.UserID == viewerID {
		return true
	}
	for _, p := range b.Participants {
		if p.UserID == viewerID {
			return true
		}
	}
	return false
}
