package suggest_rooms

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// Request модель запроса подбора комнат
type Request struct {
	AttendeeCount    int       // Количество участников, > 0
	Start            time.Time // Начало окна встречи (UTC)
	End              time.Time // Конец окна встречи (UTC), строго позже Start
	DesiredEquipment []string  // Желаемое оборудование (опционально)
	TopN             int       // Размер быстрой выдачи; 0 - значение по умолчанию
}

// Response модель ответа с ранжированными предложениями
type Response struct {
	Interval domain.TimeInterval

	// TopSuggestions лучшие доступные предложения для быстрой выдачи.
	// Занятые комнаты и комнаты недостаточной вместимости сюда
	// никогда не попадают.
	TopSuggestions []domain.Suggestion

	// AllRooms полный отсортированный список для ручного выбора.
	// Занятые комнаты присутствуют с аннотацией конфликта, чтобы
	// пользователь видел, почему они недоступны.
	AllRooms []domain.Suggestion
}
