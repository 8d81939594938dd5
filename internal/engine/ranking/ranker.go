// Package ranking собирает оценки и доступность по всем комнатам в
// упорядоченный список предложений. Вычисление чистое и без побочных
// эффектов: его безопасно запускать параллельно для множества запросов.
package ranking

import (
	"sort"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/availability"
	"github.com/m04kA/MRB-RoomBookingService/internal/engine/fitness"
)

// Rank прогоняет каждую комнату через оценку доступности и соответствия
// и возвращает список предложений, отсортированный по убыванию очков.
// Равные очки упорядочиваются по возрастанию ID комнаты, чтобы выдача
// была детерминированной.
//
// Занятые комнаты остаются в списке с аннотацией конфликта: полный
// список используется ручным выбором комнаты, где пользователю важно
// видеть, почему комната занята. Пустой список комнат даёт пустой
// результат, не ошибку.
func Rank(req fitness.Request, requested domain.TimeInterval, rooms []*domain.Room, bookingsInWindow []*domain.Booking) []domain.Suggestion {
	byRoom := groupByRoom(bookingsInWindow)

	suggestions := make([]domain.Suggestion, 0, len(rooms))
	for _, room := range rooms {
		result := availability.Evaluate(room, requested, byRoom[room.ID])
		score, category := fitness.Score(room, req)

		suggestions = append(suggestions, domain.Suggestion{
			Room:        room,
			MatchScore:  score,
			Category:    category,
			IsAvailable: result.IsAvailable,
			Conflict:    result.Conflict,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].MatchScore == suggestions[j].MatchScore {
			return suggestions[i].Room.ID < suggestions[j].Room.ID
		}
		return suggestions[i].MatchScore > suggestions[j].MatchScore
	})

	return suggestions
}

// TopN возвращает первые n доступных предложений из уже отсортированного
// списка. Занятая комната, как бы высоко она ни оценивалась, никогда не
// занимает слот быстрой выдачи; комната, не вмещающая участников, тоже
// отфильтровывается.
func TopN(suggestions []domain.Suggestion, n int) []domain.Suggestion {
	if n <= 0 {
		n = domain.DefaultTopN
	}

	top := make([]domain.Suggestion, 0, n)
	for _, s := range suggestions {
		if !s.IsAvailable || s.MatchScore <= domain.ScoreUnsuitable {
			continue
		}
		top = append(top, s)
		if len(top) == n {
			break
		}
	}

	return top
}

// groupByRoom раскладывает бронирования окна по комнатам
func groupByRoom(bookings []*domain.Booking) map[int64][]*domain.Booking {
	byRoom := make(map[int64][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}
	return byRoom
}
