package domain

// RoomCategory is a coarse capacity-fit label shown to users alongside
// the numeric match score.
type RoomCategory string

const (
	// CategoryPerfect tightest reasonable fit: capacity within ~1.2x of the party
	CategoryPerfect RoomCategory = "perfect"
	// CategoryRecommended capacity within ~1.5x of the party
	CategoryRecommended RoomCategory = "recommended"
	// CategoryLarge room is noticeably too large for the party
	CategoryLarge RoomCategory = "large"
	// CategoryAvailable fallback label: room is merely free without a strong fit
	CategoryAvailable RoomCategory = "available"
)

// ConflictReason причина недоступности комнаты
type ConflictReason string

const (
	ConflictReasonBooked      ConflictReason = "booked"
	ConflictReasonMaintenance ConflictReason = "maintenance"
	ConflictReasonInactive    ConflictReason = "inactive"
)

// Conflict describes why a room is not available for the requested window.
// For calendar conflicts it carries the first overlapping booking found in
// chronological order; for maintenance/inactive rooms it is synthetic and
// carries no booking id.
type Conflict struct {
	Reason       ConflictReason
	BookingID    int64 // 0 для синтетических конфликтов (maintenance/inactive)
	BookingTitle string
	Interval     TimeInterval
}

// AvailabilityResult is the per-room outcome of an availability evaluation.
// Invariant: Conflict is non-nil if and only if IsAvailable is false.
// Never cached across requests: the ledger can change between calls.
type AvailabilityResult struct {
	Room        *Room
	IsAvailable bool
	Conflict    *Conflict
}

// Suggestion is a scored, categorized, availability-annotated candidate
// room returned by the ranking engine. Not yet booked.
type Suggestion struct {
	Room        *Room
	MatchScore  int // 0-100
	Category    RoomCategory
	IsAvailable bool
	Conflict    *Conflict // present iff !IsAvailable
}
