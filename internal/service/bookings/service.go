package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований.
// Создание бронирований сюда не входит: оно проходит только через
// guard коммита в usecase create_booking.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Приватное бронирование видно только организатору и участникам.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetRoomBookings получает журнал бронирований комнаты, пересекающих
// окно времени. Используется календарным видом комнаты.
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRoomBookings: fetching bookings for room=%d", req.RoomID)

	if req.RoomID <= 0 {
		return nil, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.WindowStart != nil && req.WindowEnd != nil && !req.WindowStart.Before(*req.WindowEnd) {
		s.logger.Warn("GetRoomBookings: invalid window for room=%d", req.RoomID)
		return nil, fmt.Errorf("%w: window start must be before window end", ErrInvalidTimeRange)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.RoomBookingsFilter{
		RoomID:          &req.RoomID,
		WindowStart:     req.WindowStart,
		WindowEnd:       req.WindowEnd,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetRoomBookings: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: fetched %d bookings for room=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отменить может только организатор; статус переходит в cancelled,
// запись сохраняется для истории.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long (max %d)", ErrInvalidInput, domain.MaxReasonLength)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: user=%d is not the organizer of booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return nil
}

// checkReadAccess проверяет право пользователя видеть бронирование
func (s *Service) checkReadAccess(booking *domain.Booking, userID int64) error {
	if booking.Privacy == domain.PrivacyPublic {
		return nil
	}

	if booking.UserID == userID {
		return nil
	}

	for _, p := range booking.Participants {
		if p.UserID == userID {
			return nil
		}
	}

	return ErrAccessDenied
}
