package fitness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/fitness"
)

func room(id int64, capacity int, tags ...string) *domain.Room {
	return &domain.Room{
		ID:            id,
		Name:          "room",
		Capacity:      capacity,
		EquipmentTags: tags,
		IsActive:      true,
	}
}

func TestScore_CapacityBands(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		attendees int
		wantScore int
		wantCat   domain.RoomCategory
	}{
		// 6 участников: потолок 1.2x = 8, потолок 1.5x = 9
		{"six attendees capacity 6 perfect", 6, 6, domain.ScorePerfectFit, domain.CategoryPerfect},
		{"six attendees capacity 8 perfect", 8, 6, domain.ScorePerfectFit, domain.CategoryPerfect},
		{"six attendees capacity 9 recommended", 9, 6, domain.ScoreRecommendedFit, domain.CategoryRecommended},
		{"six attendees capacity 20 large", 20, 6, domain.ScoreLargeFit, domain.CategoryLarge},
		{"six attendees capacity 4 unsuitable", 4, 6, domain.ScoreUnsuitable, domain.CategoryAvailable},

		// 10 участников: потолок 1.2x = 12, потолок 1.5x = 15
		{"ten attendees capacity 12 perfect", 12, 10, domain.ScorePerfectFit, domain.CategoryPerfect},
		{"ten attendees capacity 13 recommended", 13, 10, domain.ScoreRecommendedFit, domain.CategoryRecommended},
		{"ten attendees capacity 15 recommended", 15, 10, domain.ScoreRecommendedFit, domain.CategoryRecommended},
		{"ten attendees capacity 16 large", 16, 10, domain.ScoreLargeFit, domain.CategoryLarge},

		// Один участник: любая комната вмещает
		{"one attendee capacity 2 perfect", 2, 1, domain.ScorePerfectFit, domain.CategoryPerfect},
		{"one attendee capacity 50 large", 50, 1, domain.ScoreLargeFit, domain.CategoryLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, category := fitness.Score(room(1, tt.capacity), fitness.Request{AttendeeCount: tt.attendees})
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantCat, category)
		})
	}
}

func TestScore_EquipmentBonus(t *testing.T) {
	req := fitness.Request{
		AttendeeCount:    6,
		DesiredEquipment: []string{"network", "display"},
	}

	t.Run("high-value tag earns full bonus", func(t *testing.T) {
		score, _ := fitness.Score(room(1, 8, "network"), req)
		assert.Equal(t, domain.ScorePerfectFit+domain.EquipmentBonusPerTag, score)
	})

	t.Run("bonus is capped", func(t *testing.T) {
		score, _ := fitness.Score(room(1, 8, "network", "display"), req)
		assert.Equal(t, domain.ScorePerfectFit+domain.EquipmentBonusCap, score)
	})

	t.Run("missing equipment earns nothing", func(t *testing.T) {
		score, _ := fitness.Score(room(1, 8, "whiteboard"), req)
		assert.Equal(t, domain.ScorePerfectFit, score)
	})

	t.Run("ordinary tag earns reduced bonus", func(t *testing.T) {
		score, _ := fitness.Score(
			room(1, 8, "whiteboard"),
			fitness.Request{AttendeeCount: 6, DesiredEquipment: []string{"whiteboard"}},
		)
		assert.Equal(t, domain.ScorePerfectFit+domain.EquipmentBonusPerTag/3, score)
	})

	t.Run("unsuitable room gets no bonus", func(t *testing.T) {
		score, category := fitness.Score(room(1, 4, "network", "display"), req)
		assert.Equal(t, domain.ScoreUnsuitable, score)
		assert.Equal(t, domain.CategoryAvailable, category)
	})

	t.Run("score never exceeds max", func(t *testing.T) {
		score, _ := fitness.Score(room(1, 8, "network", "display", "whiteboard"), fitness.Request{
			AttendeeCount:    6,
			DesiredEquipment: []string{"network", "display", "whiteboard"},
		})
		assert.LessOrEqual(t, score, domain.MaxMatchScore)
	})
}

// Бонус за оборудование не должен поднимать комнату в соседний диапазон:
// вместимость всегда доминирует в ранжировании.
func TestScore_CapacityDominatesEquipment(t *testing.T) {
	req := fitness.Request{
		AttendeeCount:    6,
		DesiredEquipment: []string{"network", "display"},
	}

	perfectNoEquipment, _ := fitness.Score(room(1, 8), req)
	recommendedFullEquipment, _ := fitness.Score(room(2, 9, "network", "display"), req)

	assert.Greater(t, perfectNoEquipment, recommendedFullEquipment)
}
