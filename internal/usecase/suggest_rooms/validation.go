package suggest_rooms

import (
	"errors"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные и собирает интервал запроса.
// Некорректное окно отклоняется до обращения к каталогу: ни одна
// комната при этом не рассматривается.
func validateRequest(req *Request) (domain.TimeInterval, error) {
	if req.AttendeeCount < domain.MinAttendeeCount {
		return domain.TimeInterval{}, fmt.Errorf("%w: attendeeCount must be positive", ErrInvalidInput)
	}

	interval, err := domain.NewTimeInterval(req.Start, req.End)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			return domain.TimeInterval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		}
		return domain.TimeInterval{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return interval, nil
}
