package suggest_rooms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	suggestRooms "github.com/m04kA/MRB-RoomBookingService/internal/usecase/suggest_rooms"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type stubRoomRepo struct {
	rooms []*domain.Room
	err   error
}

func (r *stubRoomRepo) List(context.Context, domain.RoomCatalogFilter) ([]*domain.Room, error) {
	return r.rooms, r.err
}

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotFilter domain.RoomBookingsFilter
}

func (r *stubBookingRepo) GetWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	r.gotFilter = filter
	return r.bookings, r.err
}

func validRequest() *suggestRooms.Request {
	return &suggestRooms.Request{
		AttendeeCount: 6,
		Start:         time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
}

func catalog() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Name: "Neptune", Capacity: 8, IsActive: true},
		{ID: 2, Name: "Atrium", Capacity: 20, IsActive: true},
		{ID: 3, Name: "Dock", Capacity: 9, IsActive: true},
		{ID: 4, Name: "Booth", Capacity: 4, IsActive: true},
		{ID: 5, Name: "Garage", Capacity: 8, IsActive: true, IsUnderMaintenance: true},
	}
}

func TestExecute_RanksCatalog(t *testing.T) {
	rooms := &stubRoomRepo{rooms: catalog()}
	bookings := &stubBookingRepo{}
	uc := suggestRooms.NewUseCase(rooms, bookings, 3, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Полный список содержит все комнаты, включая занятые и маленькие
	require.Len(t, resp.AllRooms, 5)

	// Быстрая выдача: только доступные и вмещающие.
	// Garage на обслуживании и Booth (вместимость 4) не попадают.
	require.Len(t, resp.TopSuggestions, 3)
	assert.Equal(t, int64(1), resp.TopSuggestions[0].Room.ID, "perfect fit first")
	assert.Equal(t, int64(3), resp.TopSuggestions[1].Room.ID, "recommended second")
	assert.Equal(t, int64(2), resp.TopSuggestions[2].Room.ID, "large third")

	// Комната на обслуживании аннотирована синтетическим конфликтом
	var garage *domain.Suggestion
	for i := range resp.AllRooms {
		if resp.AllRooms[i].Room.ID == 5 {
			garage = &resp.AllRooms[i]
		}
	}
	require.NotNil(t, garage)
	assert.False(t, garage.IsAvailable)
	require.NotNil(t, garage.Conflict)
	assert.Equal(t, domain.ConflictReasonMaintenance, garage.Conflict.Reason)
}

func TestExecute_BusyRoomExcludedFromTop(t *testing.T) {
	interval, err := domain.NewTimeInterval(
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	rooms := &stubRoomRepo{rooms: catalog()}
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 100, RoomID: 1, Title: "standup", Interval: interval, Status: domain.StatusConfirmed},
	}}
	uc := suggestRooms.NewUseCase(rooms, bookings, 3, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	for _, s := range resp.TopSuggestions {
		assert.NotEqual(t, int64(1), s.Room.ID, "busy room must not take a top slot")
	}

	// Окно запроса передано фильтру журнала
	require.NotNil(t, bookings.gotFilter.WindowStart)
	require.NotNil(t, bookings.gotFilter.WindowEnd)
	assert.True(t, bookings.gotFilter.WindowStart.Equal(interval.Start))
	assert.True(t, bookings.gotFilter.WindowEnd.Equal(interval.End))
}

func TestExecute_Validation(t *testing.T) {
	uc := suggestRooms.NewUseCase(&stubRoomRepo{}, &stubBookingRepo{}, 3, noopLogger{})

	t.Run("zero attendees", func(t *testing.T) {
		req := validRequest()
		req.AttendeeCount = 0

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, suggestRooms.ErrInvalidInput)
	})

	t.Run("inverted interval", func(t *testing.T) {
		req := validRequest()
		req.Start, req.End = req.End, req.Start

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, suggestRooms.ErrInvalidInterval)
	})
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := suggestRooms.NewUseCase(&stubRoomRepo{}, &stubBookingRepo{}, 3, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err, "empty catalog is an empty result, not an error")
	assert.Empty(t, resp.TopSuggestions)
	assert.Empty(t, resp.AllRooms)
}

func TestExecute_RepoErrors(t *testing.T) {
	t.Run("room repo failure", func(t *testing.T) {
		uc := suggestRooms.NewUseCase(
			&stubRoomRepo{err: errors.New("connection refused")},
			&stubBookingRepo{},
			3,
			noopLogger{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, suggestRooms.ErrInternal)
	})

	t.Run("booking repo failure", func(t *testing.T) {
		uc := suggestRooms.NewUseCase(
			&stubRoomRepo{rooms: catalog()},
			&stubBookingRepo{err: errors.New("connection refused")},
			3,
			noopLogger{},
		)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, suggestRooms.ErrInternal)
	})
}

func TestExecute_CustomTopN(t *testing.T) {
	uc := suggestRooms.NewUseCase(&stubRoomRepo{rooms: catalog()}, &stubBookingRepo{}, 3, noopLogger{})

	req := validRequest()
	req.TopN = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.TopSuggestions, 1)
}
