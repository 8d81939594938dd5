package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

func mustInterval(t *testing.T, start, end string) domain.TimeInterval {
	t.Helper()

	startTime, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	endTime, err := time.Parse(time.RFC3339, end)
	require.NoError(t, err)

	interval, err := domain.NewTimeInterval(startTime, endTime)
	require.NoError(t, err)
	return interval
}

func TestNewTimeInterval(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		interval, err := domain.NewTimeInterval(start, end)
		require.NoError(t, err)
		assert.Equal(t, start, interval.Start)
		assert.Equal(t, end, interval.End)
		assert.Equal(t, time.Hour, interval.Duration())
	})

	t.Run("zero-length interval rejected", func(t *testing.T) {
		_, err := domain.NewTimeInterval(start, start)
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	})

	t.Run("inverted interval rejected", func(t *testing.T) {
		_, err := domain.NewTimeInterval(end, start)
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	})

	t.Run("zero times rejected", func(t *testing.T) {
		_, err := domain.NewTimeInterval(time.Time{}, end)
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)

		_, err = domain.NewTimeInterval(start, time.Time{})
		assert.ErrorIs(t, err, domain.ErrInvalidInterval)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		loc := time.FixedZone("MSK", 3*60*60)
		interval, err := domain.NewTimeInterval(start.In(loc), end.In(loc))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, interval.Start.Location())
		assert.True(t, interval.Start.Equal(start))
	})
}

func TestTimeInterval_Overlaps(t *testing.T) {
	base := mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z")

	tests := []struct {
		name     string
		other    domain.TimeInterval
		overlaps bool
	}{
		{
			name:     "identical intervals overlap",
			other:    mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z"),
			overlaps: true,
		},
		{
			name:     "partial overlap at end",
			other:    mustInterval(t, "2026-09-01T10:30:00Z", "2026-09-01T11:30:00Z"),
			overlaps: true,
		},
		{
			name:     "partial overlap at start",
			other:    mustInterval(t, "2026-09-01T09:30:00Z", "2026-09-01T10:30:00Z"),
			overlaps: true,
		},
		{
			name:     "other fully inside",
			other:    mustInterval(t, "2026-09-01T10:15:00Z", "2026-09-01T10:45:00Z"),
			overlaps: true,
		},
		{
			name:     "other fully covers",
			other:    mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T12:00:00Z"),
			overlaps: true,
		},
		{
			// Полуоткрытые интервалы: встреча, заканчивающаяся в 10:00,
			// не мешает встрече, начинающейся в 10:00
			name:     "touching at base start does not overlap",
			other:    mustInterval(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z"),
			overlaps: false,
		},
		{
			name:     "touching at base end does not overlap",
			other:    mustInterval(t, "2026-09-01T11:00:00Z", "2026-09-01T12:00:00Z"),
			overlaps: false,
		},
		{
			name:     "disjoint before",
			other:    mustInterval(t, "2026-09-01T07:00:00Z", "2026-09-01T08:00:00Z"),
			overlaps: false,
		},
		{
			name:     "disjoint after",
			other:    mustInterval(t, "2026-09-01T12:00:00Z", "2026-09-01T13:00:00Z"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, base.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(base))
		})
	}
}

func TestTimeInterval_Contains(t *testing.T) {
	interval := mustInterval(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z")

	assert.True(t, interval.Contains(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)), "start is included")
	assert.True(t, interval.Contains(time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)))
	assert.False(t, interval.Contains(time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)), "end is excluded")
	assert.False(t, interval.Contains(time.Date(2026, 9, 1, 9, 59, 59, 0, time.UTC)))
}

func TestBooking_IsBlocking(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed} {
		b := &domain.Booking{Status: status}
		assert.True(t, b.IsBlocking(), "status %s must block the slot", status)
	}

	cancelled := &domain.Booking{Status: domain.StatusCancelled}
	assert.False(t, cancelled.IsBlocking())
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.CanBeCancelled())
}
