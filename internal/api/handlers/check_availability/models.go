package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/MRB-RoomBookingService/internal/usecase/check_room_availability"
	"github.com/m04kA/MRB-RoomBookingService/pkg/ptr"
)

// ConflictDTO причина недоступности комнаты
type ConflictDTO struct {
	Reason       string  `json:"reason"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	BookingTitle *string `json:"bookingTitle,omitempty"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	RoomID      int64        `json:"roomId"`
	RoomName    string       `json:"roomName"`
	Capacity    int          `json:"capacity"`
	Start       string       `json:"start"`
	End         string       `json:"end"`
	IsAvailable bool         `json:"isAvailable"`
	Conflict    *ConflictDTO `json:"conflict,omitempty"`

	// Заполняются только при переданном attendeeCount
	MatchScore *int    `json:"matchScore,omitempty"`
	Category   *string `json:"category,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		RoomID:      resp.Room.ID,
		RoomName:    resp.Room.Name,
		Capacity:    resp.Room.Capacity,
		Start:       resp.Interval.Start.Format(time.RFC3339),
		End:         resp.Interval.End.Format(time.RFC3339),
		IsAvailable: resp.IsAvailable,
		MatchScore:  resp.MatchScore,
	}

	if resp.Category != nil {
		out.Category = ptr.Ptr(string(*resp.Category))
	}

	if resp.Conflict != nil {
		dto := &ConflictDTO{Reason: string(resp.Conflict.Reason)}
		if resp.Conflict.BookingID != 0 {
			dto.BookingID = ptr.Ptr(resp.Conflict.BookingID)
			dto.BookingTitle = ptr.Ptr(resp.Conflict.BookingTitle)
			dto.Start = ptr.Ptr(resp.Conflict.Interval.Start.Format(time.RFC3339))
			dto.End = ptr.Ptr(resp.Conflict.Interval.End.Format(time.RFC3339))
		}
		out.Conflict = dto
	}

	return out
}
