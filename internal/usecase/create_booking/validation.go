package create_booking

import (
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные и собирает интервал запроса.
// Ошибки валидации - ошибки вызывающей стороны: отклоняются синхронно
// и никогда не повторяются автоматически.
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.UserID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return domain.TimeInterval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Title == "" {
		return domain.TimeInterval{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len(req.Title) > domain.MaxTitleLength {
		return domain.TimeInterval{}, fmt.Errorf("%w: title is too long (max %d)", ErrInvalidInput, domain.MaxTitleLength)
	}

	if err := validateParticipants(req.Participants); err != nil {
		return domain.TimeInterval{}, err
	}

	if err := validatePrivacy(req.Privacy); err != nil {
		return domain.TimeInterval{}, err
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		return domain.TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	return interval, nil
}

// validateParticipants проверяет роли и уникальность участников
func validateParticipants(participants []domain.Participant) error {
	seen := make(map[int64]struct{}, len(participants))

	for _, p := range participants {
		if p.UserID <= 0 {
			return fmt.Errorf("%w: participant userID must be positive", ErrInvalidInput)
		}

		switch p.Role {
		case domain.RoleOrganizer, domain.RoleRequired, domain.RoleOptional:
		default:
			return fmt.Errorf("%w: unknown participant role %q", ErrInvalidInput, p.Role)
		}

		if _, ok := seen[p.UserID]; ok {
			return fmt.Errorf("%w: duplicate participant userID=%d", ErrInvalidInput, p.UserID)
		}
		seen[p.UserID] = struct{}{}
	}

	return nil
}

// validatePrivacy проверяет допустимость значения видимости
func validatePrivacy(privacy domain.BookingPrivacy) error {
	switch privacy {
	case domain.PrivacyPublic, domain.PrivacyPrivate:
		return nil
	default:
		return fmt.Errorf("%w: unknown privacy %q", ErrInvalidInput, privacy)
	}
}

// validateCapacity проверяет, что комната вмещает участников встречи.
// Организатор занимает место, даже если не указан в списке участников.
func validateCapacity(room *domain.Room, req *Request) error {
	attendees := len(req.Participants)
	if !participantsContain(req.Participants, req.UserID) {
		attendees++
	}

	if attendees > room.Capacity {
		return fmt.Errorf("%w: %d attendees, capacity %d", ErrCapacityExceeded, attendees, room.Capacity)
	}

	return nil
}

func participantsContain(participants []domain.Participant, userID int64) bool {
	for _, p := range participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
