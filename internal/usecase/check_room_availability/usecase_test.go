package check_room_availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/room"
	checkAvailability "github.com/m04kA/MRB-RoomBookingService/internal/usecase/check_room_availability"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubRoomRepo struct {
	room *domain.Room
}

func (r *stubRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r.room == nil || r.room.ID != id {
		return nil, roomRepo.ErrRoomNotFound
	}
	return r.room, nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (r *stubBookingRepo) GetWithFilter(context.Context, domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, nil
}

func validRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		RoomID: 1,
		Start:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		End:    time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestExecute_FreeRoom(t *testing.T) {
	rooms := &stubRoomRepo{room: &domain.Room{ID: 1, Name: "Neptune", Capacity: 8, IsActive: true}}
	uc := checkAvailability.NewUseCase(rooms, &stubBookingRepo{}, noopLogger{})

	t.Run("without attendee count no score", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), validRequest())

		require.NoError(t, err)
		assert.True(t, resp.IsAvailable)
		assert.Nil(t, resp.Conflict)
		assert.Nil(t, resp.MatchScore, "score is computed only when attendees are known")
		assert.Nil(t, resp.Category)
	})

	t.Run("with attendee count score present", func(t *testing.T) {
		req := validRequest()
		req.AttendeeCount = 6

		resp, err := uc.Execute(context.Background(), req)

		require.NoError(t, err)
		require.NotNil(t, resp.MatchScore)
		assert.Equal(t, domain.ScorePerfectFit, *resp.MatchScore)
		require.NotNil(t, resp.Category)
		assert.Equal(t, domain.CategoryPerfect, *resp.Category)
	})
}

func TestExecute_BusyRoom(t *testing.T) {
	interval, err := domain.NewTimeInterval(
		time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 11, 30, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	rooms := &stubRoomRepo{room: &domain.Room{ID: 1, Name: "Neptune", Capacity: 8, IsActive: true}}
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, Title: "standup", Interval: interval, Status: domain.StatusConfirmed},
	}}
	uc := checkAvailability.NewUseCase(rooms, bookings, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, domain.ConflictReasonBooked, resp.Conflict.Reason)
	assert.Equal(t, int64(100), resp.Conflict.BookingID)
}

func TestExecute_MaintenanceRoom(t *testing.T) {
	rooms := &stubRoomRepo{room: &domain.Room{ID: 1, Name: "Garage", Capacity: 8, IsActive: true, IsUnderMaintenance: true}}
	uc := checkAvailability.NewUseCase(rooms, &stubBookingRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, domain.ConflictReasonMaintenance, resp.Conflict.Reason)
}

func TestExecute_Errors(t *testing.T) {
	uc := checkAvailability.NewUseCase(&stubRoomRepo{}, &stubBookingRepo{}, noopLogger{})

	t.Run("room not found", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, checkAvailability.ErrRoomNotFound)
	})

	t.Run("invalid interval", func(t *testing.T) {
		req := validRequest()
		req.Start, req.End = req.End, req.Start

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, checkAvailability.ErrInvalidInterval)
	})

	t.Run("invalid room id", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, checkAvailability.ErrInvalidInput)
	})
}
