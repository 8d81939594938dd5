package domain

// Capacity fit thresholds, expressed as tenths to keep the band math in
// integers: a room is a "perfect" fit when capacity <= ceil(attendees * 1.2)
// and "recommended" when capacity <= ceil(attendees * 1.5).
const (
	PerfectFitRatioTenths     = 12
	RecommendedFitRatioTenths = 15
)

// Match score components. Band scores keep capacity fit dominant: a lower
// band plus the full equipment bonus never reaches the next band.
const (
	ScorePerfectFit     = 85
	ScoreRecommendedFit = 60
	ScoreLargeFit       = 30
	ScoreUnsuitable     = 0

	EquipmentBonusPerTag = 15
	EquipmentBonusCap    = 15

	MaxMatchScore = 100
)

// High-value equipment tags that earn the full per-tag bonus
const (
	EquipmentNetwork = "network"
	EquipmentDisplay = "display"
)

// Business validation constants
const (
	MinAttendeeCount = 1
	MaxTitleLength   = 200
	MaxReasonLength  = 500
)

// DefaultTopN количество лучших предложений в быстрой выдаче
const DefaultTopN = 3

// BlockingStatuses список статусов, резервирующих слот при проверке
// пересечений. PENDING трактуется как предварительный холд и блокирует
// слот наравне с CONFIRMED.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, не участвующих в проверке пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
