// Package fitness вычисляет числовую оценку соответствия комнаты запросу
// и категорию вместимости. Функция чистая и используется одновременно
// путём подбора и путём подтверждения бронирования, чтобы оценка на
// экране и оценка при коммите никогда не расходились.
package fitness

import "github.com/m04kA/MRB-RoomBookingService/internal/domain"

// Request параметры запроса для оценки соответствия комнаты
type Request struct {
	AttendeeCount    int      // количество участников, > 0 (валидируется вызывающей стороной)
	DesiredEquipment []string // желаемое оборудование (опционально)
}

// Score вычисляет matchScore (0-100) и категорию вместимости.
//
// Категория и очки выводятся из одного и того же отношения
// capacity/attendeeCount, поэтому по построению не могут противоречить
// друг другу. Комната, не вмещающая участников, получает 0 очков и
// категорию-заглушку: в ранжирование она не попадает, но остаётся
// видимой в полном списке.
//
// Пороги считаются в целых числах через потолок: комната на 8 мест для
// 6 участников (отношение 1.33, потолок 1.2x = 8) остаётся идеальной.
func Score(room *domain.Room, req Request) (int, domain.RoomCategory) {
	if !room.FitsAttendees(req.AttendeeCount) {
		return domain.ScoreUnsuitable, domain.CategoryAvailable
	}

	var (
		base     int
		category domain.RoomCategory
	)

	switch {
	case room.Capacity <= ceilRatio(req.AttendeeCount, domain.PerfectFitRatioTenths):
		base = domain.ScorePerfectFit
		category = domain.CategoryPerfect
	case room.Capacity <= ceilRatio(req.AttendeeCount, domain.RecommendedFitRatioTenths):
		base = domain.ScoreRecommendedFit
		category = domain.CategoryRecommended
	default:
		base = domain.ScoreLargeFit
		category = domain.CategoryLarge
	}

	score := base + equipmentBonus(room, req.DesiredEquipment)
	if score > domain.MaxMatchScore {
		score = domain.MaxMatchScore
	}

	return score, category
}

// equipmentBonus начисляет бонус за совпавшее желаемое оборудование.
// Полный бонус даётся только за высокоценные теги (сеть, экран).
// Бонус ограничен сверху, чтобы вместимость всегда доминировала
// в ранжировании: ни один бонус не поднимает комнату в соседний диапазон.
func equipmentBonus(room *domain.Room, desired []string) int {
	bonus := 0
	for _, tag := range desired {
		if !room.HasEquipment(tag) {
			continue
		}
		if tag == domain.EquipmentNetwork || tag == domain.EquipmentDisplay {
			bonus += domain.EquipmentBonusPerTag
		} else {
			bonus += domain.EquipmentBonusPerTag / 3
		}
	}
	if bonus > domain.EquipmentBonusCap {
		bonus = domain.EquipmentBonusCap
	}
	return bonus
}

// ceilRatio возвращает ceil(attendees * tenths / 10) в целочисленной арифметике
func ceilRatio(attendees, tenths int) int {
	return (attendees*tenths + 9) / 10
}
