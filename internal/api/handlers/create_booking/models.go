package create_booking

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/MRB-RoomBookingService/internal/usecase/create_booking"
)

// ParticipantDTO участник встречи
type ParticipantDTO struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"` // organizer | required | optional
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID         int64            `json:"roomId"`
	Title          string           `json:"title"`
	Start          string           `json:"start"` // RFC3339
	End            string           `json:"end"`   // RFC3339
	Participants   []ParticipantDTO `json:"participants,omitempty"`
	Privacy        string           `json:"privacy,omitempty"` // по умолчанию public
	RecurrenceRule *string          `json:"recurrenceRule,omitempty"`
}

// ConflictDTO детали конфликта для ответа 409
type ConflictDTO struct {
	Reason       string  `json:"reason"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	BookingTitle *string `json:"bookingTitle,omitempty"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
}

// ConflictResponse тело ответа 409: отказ коммита с причиной
type ConflictResponse struct {
	Error    string      `json:"error"`
	Conflict ConflictDTO `json:"conflict"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64            `json:"id"`
	RoomID         int64            `json:"roomId"`
	UserID         int64            `json:"userId"`
	Title          string           `json:"title"`
	Start          string           `json:"start"`
	End            string           `json:"end"`
	Status         string           `json:"status"`
	Privacy        string           `json:"privacy"`
	Participants   []ParticipantDTO `json:"participants"`
	RecurrenceRule *string          `json:"recurrenceRule,omitempty"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// userID приходит из контекста аутентификации, не из тела.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	participants := make([]domain.Participant, len(r.Participants))
	for i, p := range r.Participants {
		participants[i] = domain.Participant{
			UserID: p.UserID,
			Role:   domain.ParticipantRole(p.Role),
		}
	}

	privacy := domain.PrivacyPublic
	if r.Privacy != "" {
		privacy = domain.BookingPrivacy(r.Privacy)
	}

	return &createBooking.Request{
		UserID:         userID,
		RoomID:         r.RoomID,
		Title:          r.Title,
		Start:          start,
		End:            end,
		Participants:   participants,
		Privacy:        privacy,
		RecurrenceRule: r.RecurrenceRule,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	participants := make([]ParticipantDTO, len(resp.Participants))
	for i, p := range resp.Participants {
		participants[i] = ParticipantDTO{
			UserID: p.UserID,
			Role:   string(p.Role),
		}
	}

	return &BookingResponse{
		ID:             resp.ID,
		RoomID:         resp.RoomID,
		UserID:         resp.UserID,
		Title:          resp.Title,
		Start:          resp.Interval.Start.Format(time.RFC3339),
		End:            resp.Interval.End.Format(time.RFC3339),
		Status:         resp.Status,
		Privacy:        resp.Privacy,
		Participants:   participants,
		RecurrenceRule: resp.RecurrenceRule,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует детали конфликта в тело ответа 409
func FromConflictError(message string, conflictErr *createBooking.ConflictError) *ConflictResponse {
	dto := ConflictDTO{Reason: string(conflictErr.Conflict.Reason)}

	if conflictErr.Conflict.BookingID != 0 {
		dto.BookingID = &conflictErr.Conflict.BookingID
		dto.BookingTitle = &conflictErr.Conflict.BookingTitle
		start := conflictErr.Conflict.Interval.Start.Format(time.RFC3339)
		end := conflictErr.Conflict.Interval.End.Format(time.RFC3339)
		dto.Start = &start
		dto.End = &end
	}

	return &ConflictResponse{
		Error:    message,
		Conflict: dto,
	}
}
