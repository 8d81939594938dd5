package get_booking

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/MRB-RoomBookingService/pkg/ptr"
)

// ParticipantDTO участник встречи
type ParticipantDTO struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64            `json:"id"`
	RoomID             int64            `json:"roomId"`
	UserID             int64            `json:"userId"`
	Title              string           `json:"title"`
	Start              string           `json:"start"`
	End                string           `json:"end"`
	Status             string           `json:"status"`
	Privacy            string           `json:"privacy"`
	Participants       []ParticipantDTO `json:"participants"`
	RecurrenceRule     *string          `json:"recurrenceRule,omitempty"`
	CancellationReason *string          `json:"cancellationReason,omitempty"`
	CancelledAt        *string          `json:"cancelledAt,omitempty"`
	CreatedAt          string           `json:"createdAt"`
	UpdatedAt          string           `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	participants := make([]ParticipantDTO, len(resp.Participants))
	for i, p := range resp.Participants {
		participants[i] = ParticipantDTO{
			UserID: p.UserID,
			Role:   p.Role,
		}
	}

	var cancelledAt *string
	if resp.CancelledAt != nil {
		cancelledAt = ptr.Ptr(resp.CancelledAt.Format(time.RFC3339))
	}

	return &BookingResponse{
		ID:                 resp.ID,
		RoomID:             resp.RoomID,
		UserID:             resp.UserID,
		Title:              resp.Title,
		Start:              resp.Start.Format(time.RFC3339),
		End:                resp.End.Format(time.RFC3339),
		Status:             resp.Status,
		Privacy:            resp.Privacy,
		Participants:       participants,
		RecurrenceRule:     resp.RecurrenceRule,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
