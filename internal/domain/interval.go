package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval возвращается при попытке создать интервал с start >= end
var ErrInvalidInterval = errors.New("domain: invalid time interval")

// TimeInterval represents a half-open time window [Start, End) in UTC.
// The End instant itself is not part of the window, so two bookings
// can touch at a boundary without conflicting.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// NewTimeInterval constructs a validated interval.
// Zero-length and inverted intervals are rejected.
func NewTimeInterval(start, end time.Time) (TimeInterval, error) {
	if start.IsZero() || end.IsZero() {
		return TimeInterval{}, fmt.Errorf("%w: start and end are required", ErrInvalidInterval)
	}
	if !start.Before(end) {
		return TimeInterval{}, fmt.Errorf("%w: start must be before end", ErrInvalidInterval)
	}
	return TimeInterval{Start: start.UTC(), End: end.UTC()}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Strict inequalities: an interval ending exactly where another
// starts does not overlap it.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether the instant falls inside the interval.
// The start is included, the end is not.
func (i TimeInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// Duration returns the length of the interval.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// IsZero reports whether the interval was never constructed.
func (i TimeInterval) IsZero() bool {
	return i.Start.IsZero() && i.End.IsZero()
}
