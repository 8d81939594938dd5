package cancel_booking

import (
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// userID приходит из контекста аутентификации, не из тела.
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID: userID,
		Reason: r.Reason,
	}
}
