package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/bookings/models"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	booking *domain.Booking
	list    []*domain.Booking

	cancelled       bool
	cancelledReason string
}

func (r *stubRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.booking, nil
}

func (r *stubRepo) GetByUserID(context.Context, int64, *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.list, nil
}

func (r *stubRepo) GetWithFilter(context.Context, domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	return r.list, nil
}

func (r *stubRepo) Cancel(_ context.Context, _ int64, reason string) error {
	r.cancelled = true
	r.cancelledReason = reason
	return nil
}

func interval(t *testing.T) domain.TimeInterval {
	t.Helper()

	result, err := domain.NewTimeInterval(
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return result
}

func privateBooking(t *testing.T) *domain.Booking {
	t.Helper()
	return &domain.Booking{
		ID:       7,
		RoomID:   1,
		UserID:   42,
		Title:    "1:1",
		Interval: interval(t),
		Status:   domain.StatusConfirmed,
		Privacy:  domain.PrivacyPrivate,
		Participants: []domain.Participant{
			{UserID: 42, Role: domain.RoleOrganizer},
			{UserID: 43, Role: domain.RoleRequired},
		},
	}
}

func TestGetByID_Access(t *testing.T) {
	repo := &stubRepo{booking: privateBooking(t)}
	svc := bookings.NewService(repo, noopLogger{})

	t.Run("organizer sees own private booking", func(t *testing.T) {
		result, err := svc.GetByID(context.Background(), 7, 42)
		require.NoError(t, err)
		assert.Equal(t, "1:1", result.Title)
	})

	t.Run("participant sees private booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 7, 43)
		assert.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 7, 99)
		assert.ErrorIs(t, err, bookings.ErrAccessDenied)
	})

	t.Run("public booking visible to anyone", func(t *testing.T) {
		public := privateBooking(t)
		public.Privacy = domain.PrivacyPublic
		svc := bookings.NewService(&stubRepo{booking: public}, noopLogger{})

		_, err := svc.GetByID(context.Background(), 7, 99)
		assert.NoError(t, err)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 42)
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("organizer cancels", func(t *testing.T) {
		repo := &stubRepo{booking: privateBooking(t)}
		svc := bookings.NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 42, Reason: "moved"})

		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		assert.Equal(t, "moved", repo.cancelledReason)
	})

	t.Run("participant cannot cancel", func(t *testing.T) {
		repo := &stubRepo{booking: privateBooking(t)}
		svc := bookings.NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 43})

		assert.ErrorIs(t, err, bookings.ErrAccessDenied)
		assert.False(t, repo.cancelled)
	})

	t.Run("cancelled booking cannot be cancelled again", func(t *testing.T) {
		b := privateBooking(t)
		b.Status = domain.StatusCancelled
		repo := &stubRepo{booking: b}
		svc := bookings.NewService(repo, noopLogger{})

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 42})

		assert.ErrorIs(t, err, bookings.ErrCannotCancel)
	})

	t.Run("overlong reason rejected", func(t *testing.T) {
		repo := &stubRepo{booking: privateBooking(t)}
		svc := bookings.NewService(repo, noopLogger{})

		longReason := make([]byte, domain.MaxReasonLength+1)
		for i := range longReason {
			longReason[i] = 'x'
		}

		err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{UserID: 42, Reason: string(longReason)})

		assert.ErrorIs(t, err, bookings.ErrInvalidInput)
	})
}

func TestGetRoomBookings_Validation(t *testing.T) {
	svc := bookings.NewService(&stubRepo{}, noopLogger{})

	t.Run("invalid room id", func(t *testing.T) {
		_, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{RoomID: 0})
		assert.ErrorIs(t, err, bookings.ErrInvalidInput)
	})

	t.Run("inverted window", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

		_, err := svc.GetRoomBookings(context.Background(), &models.GetRoomBookingsRequest{
			RoomID:      1,
			WindowStart: &start,
			WindowEnd:   &end,
		})
		assert.ErrorIs(t, err, bookings.ErrInvalidTimeRange)
	})
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &stubRepo{list: []*domain.Booking{privateBooking(t)}}
	svc := bookings.NewService(repo, noopLogger{})

	t.Run("valid status", func(t *testing.T) {
		status := "confirmed"
		result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 42,
			Status: &status,
		})

		require.NoError(t, err)
		assert.Len(t, result.Bookings, 1)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		status := "archived"
		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
			UserID: 42,
			Status: &status,
		})

		assert.ErrorIs(t, err, bookings.ErrInvalidInput)
	})
}
