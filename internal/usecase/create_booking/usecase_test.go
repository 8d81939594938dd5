package create_booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRB-RoomBookingService/internal/integrations/userservice"
	createBooking "github.com/m04kA/MRB-RoomBookingService/internal/usecase/create_booking"
	"github.com/m04kA/MRB-RoomBookingService/pkg/txmanager"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// fakeBookingRepo хранит бронирования в памяти и воспроизводит
// семантику exclusion constraint: вставка пересекающегося интервала
// отклоняется независимо от того, что увидела проверка доступности.
type fakeBookingRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (r *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.Booking
	for _, b := range r.bookings {
		if filter.RoomID != nil && b.RoomID != *filter.RoomID {
			continue
		}
		if !filter.IncludeInactive && b.IsCancelled() {
			continue
		}
		if filter.WindowStart != nil && !b.Interval.End.After(*filter.WindowStart) {
			continue
		}
		if filter.WindowEnd != nil && !b.Interval.Start.Before(*filter.WindowEnd) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.RoomID == booking.RoomID && existing.IsBlocking() &&
			existing.Interval.Overlaps(booking.Interval) {
			return nil, bookingRepo.ErrIntervalTaken
		}
	}

	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeUserClient struct {
	err error
}

func (c *fakeUserClient) GetUserWithGracefulDegradation(_ context.Context, userID int64) (*userservice.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &userservice.User{ID: userID, IsActive: true}, nil
}

// fakeTxManager сериализует критические секции глобальным мьютексом,
// имитируя SERIALIZABLE: ровно одна секция видит и изменяет журнал
// в каждый момент времени.
type fakeTxManager struct {
	mu  sync.Mutex
	err error // если задан, возвращается вместо выполнения fn
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func validRequest() *createBooking.Request {
	return &createBooking.Request{
		UserID:  42,
		RoomID:  1,
		Title:   "Sprint planning",
		Start:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		End:     time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
		Privacy: domain.PrivacyPublic,
		Participants: []domain.Participant{
			{UserID: 42, Role: domain.RoleOrganizer},
			{UserID: 43, Role: domain.RoleRequired},
		},
	}
}

// fixedClock фиксирует "сейчас" раньше дат из validRequest,
// чтобы тесты не протухали со временем
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo, users *fakeUserClient, tx createBooking.TransactionManager) *createBooking.UseCase {
	uc := createBooking.NewUseCase(bookings, rooms, users, tx, time.Second, noopLogger{})
	return uc.WithTimeProvider(fixedClock{now: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)})
}

func defaultRooms() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Name: "Neptune", Capacity: 8, IsActive: true},
		2: {ID: 2, Name: "Pluto", Capacity: 4, IsActive: true, IsUnderMaintenance: true},
		3: {ID: 3, Name: "Vault", Capacity: 2, IsActive: true},
	}}
}

func TestExecute_Success(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newUseCase(repo, defaultRooms(), &fakeUserClient{}, &fakeTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Len(t, resp.Participants, 2)
	assert.Equal(t, 1, repo.count())
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(newFakeBookingRepo(), defaultRooms(), &fakeUserClient{}, &fakeTxManager{})

	t.Run("inverted interval", func(t *testing.T) {
		req := validRequest()
		req.Start, req.End = req.End, req.Start

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInterval)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		req := validRequest()
		req.End = req.Start

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInterval)
	})

	t.Run("missing title", func(t *testing.T) {
		req := validRequest()
		req.Title = ""

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
	})

	t.Run("duplicate participant", func(t *testing.T) {
		req := validRequest()
		req.Participants = append(req.Participants, domain.Participant{UserID: 43, Role: domain.RoleOptional})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := validRequest()
		req.Participants[1].Role = "listener"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInput)
	})

	t.Run("window entirely in the past", func(t *testing.T) {
		req := validRequest()
		req.Start = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
		req.End = time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrInvalidInterval)
	})
}

func TestExecute_RoomChecks(t *testing.T) {
	uc := newUseCase(newFakeBookingRepo(), defaultRooms(), &fakeUserClient{}, &fakeTxManager{})

	t.Run("room not found", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 99

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrRoomNotFound)
	})

	t.Run("maintenance room rejected before calendar check", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 2

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrRoomUnavailable)
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 3 // вместимость 2
		req.Participants = []domain.Participant{
			{UserID: 42, Role: domain.RoleOrganizer},
			{UserID: 43, Role: domain.RoleRequired},
			{UserID: 44, Role: domain.RoleOptional},
		}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrCapacityExceeded)
	})

	t.Run("organizer seat counted when absent from participants", func(t *testing.T) {
		req := validRequest()
		req.RoomID = 3
		// Два участника без организатора: итого 3 места при вместимости 2
		req.Participants = []domain.Participant{
			{UserID: 43, Role: domain.RoleRequired},
			{UserID: 44, Role: domain.RoleOptional},
		}

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrCapacityExceeded)
	})
}

func TestExecute_OrganizerCheck(t *testing.T) {
	t.Run("organizer not found", func(t *testing.T) {
		users := &fakeUserClient{err: userservice.ErrUserNotFound}
		uc := newUseCase(newFakeBookingRepo(), defaultRooms(), users, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, createBooking.ErrOrganizerNotFound)
	})

	t.Run("degraded user service does not block booking", func(t *testing.T) {
		users := &fakeUserClient{err: userservice.ErrServiceDegraded}
		repo := newFakeBookingRepo()
		uc := newUseCase(repo, defaultRooms(), users, &fakeTxManager{})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, 1, repo.count())
	})
}

func TestExecute_Conflict(t *testing.T) {
	repo := newFakeBookingRepo()
	uc := newUseCase(repo, defaultRooms(), &fakeUserClient{}, &fakeTxManager{})

	first, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	t.Run("identical request is rejected, not deduplicated", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), validRequest())

		require.Error(t, err)
		assert.ErrorIs(t, err, createBooking.ErrRoomConflict)

		var conflictErr *createBooking.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, domain.ConflictReasonBooked, conflictErr.Conflict.Reason)
		assert.Equal(t, first.ID, conflictErr.Conflict.BookingID)

		assert.Equal(t, 1, repo.count(), "rejected commit must not insert anything")
	})

	t.Run("partial overlap is rejected", func(t *testing.T) {
		req := validRequest()
		req.Start = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
		req.End = time.Date(2026, 9, 1, 11, 30, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, createBooking.ErrRoomConflict)
	})

	t.Run("back-to-back booking succeeds", func(t *testing.T) {
		req := validRequest()
		req.Start = time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)
		req.End = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestExecute_BusyMapping(t *testing.T) {
	t.Run("deadline exceeded maps to busy", func(t *testing.T) {
		tx := &fakeTxManager{err: context.DeadlineExceeded}
		uc := newUseCase(newFakeBookingRepo(), defaultRooms(), &fakeUserClient{}, tx)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, createBooking.ErrBusy)
	})

	t.Run("serialization exhaustion maps to busy", func(t *testing.T) {
		tx := &fakeTxManager{err: txmanager.ErrSerializationFailure}
		uc := newUseCase(newFakeBookingRepo(), defaultRooms(), &fakeUserClient{}, tx)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, createBooking.ErrBusy)
	})
}

// Гонка за один слот: N конкурентных коммитов на одну комнату и окно,
// побеждает ровно один, остальные получают конфликт.
func TestExecute_ConcurrentCommits(t *testing.T) {
	const workers = 16

	repo := newFakeBookingRepo()
	uc := newUseCase(repo, defaultRooms(), &fakeUserClient{}, &fakeTxManager{})

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = int64(100 + n)
			req.Participants = []domain.Participant{
				{UserID: int64(100 + n), Role: domain.RoleOrganizer},
			}
			_, errs[n] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, createBooking.ErrRoomConflict)
	}

	assert.Equal(t, 1, successes, "exactly one commit must win the slot")
	assert.Equal(t, 1, repo.count())
}

func TestConflictError_Unwrap(t *testing.T) {
	err := &createBooking.ConflictError{Conflict: domain.Conflict{
		Reason:       domain.ConflictReasonBooked,
		BookingID:    7,
		BookingTitle: "Design review",
	}}

	assert.True(t, errors.Is(err, createBooking.ErrRoomConflict))
	assert.Contains(t, err.Error(), "id=7")
}
