package suggest_rooms

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	suggestRooms "github.com/m04kA/MRB-RoomBookingService/internal/usecase/suggest_rooms"
	"github.com/m04kA/MRB-RoomBookingService/pkg/ptr"
)

// SuggestRoomsRequest HTTP request model
type SuggestRoomsRequest struct {
	AttendeeCount    int      `json:"attendeeCount"`
	Start            string   `json:"start"` // RFC3339, "2026-09-01T10:00:00Z"
	End              string   `json:"end"`   // RFC3339
	DesiredEquipment []string `json:"desiredEquipment,omitempty"`
	TopN             int      `json:"topN,omitempty"`
}

// RoomDTO комната в составе предложения
type RoomDTO struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Capacity           int      `json:"capacity"`
	EquipmentTags      []string `json:"equipmentTags"`
	SiteID             int64    `json:"siteId"`
	IsUnderMaintenance bool     `json:"isUnderMaintenance"`
}

// ConflictDTO причина недоступности комнаты
type ConflictDTO struct {
	Reason       string  `json:"reason"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	BookingTitle *string `json:"bookingTitle,omitempty"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
}

// SuggestionDTO оцененная комната-кандидат
type SuggestionDTO struct {
	Room        RoomDTO      `json:"room"`
	MatchScore  int          `json:"matchScore"`
	Category    string       `json:"category"`
	IsAvailable bool         `json:"isAvailable"`
	Conflict    *ConflictDTO `json:"conflict,omitempty"`
}

// SuggestRoomsResponse HTTP response model
type SuggestRoomsResponse struct {
	Start          string          `json:"start"`
	End            string          `json:"end"`
	TopSuggestions []SuggestionDTO `json:"topSuggestions"`
	AllRooms       []SuggestionDTO `json:"allRooms"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SuggestRoomsRequest) ToUseCaseRequest() (*suggestRooms.Request, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, err
	}

	return &suggestRooms.Request{
		AttendeeCount:    r.AttendeeCount,
		Start:            start,
		End:              end,
		DesiredEquipment: r.DesiredEquipment,
		TopN:             r.TopN,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestRooms.Response) *SuggestRoomsResponse {
	return &SuggestRoomsResponse{
		Start:          resp.Interval.Start.Format(time.RFC3339),
		End:            resp.Interval.End.Format(time.RFC3339),
		TopSuggestions: toSuggestionDTOs(resp.TopSuggestions),
		AllRooms:       toSuggestionDTOs(resp.AllRooms),
	}
}

func toSuggestionDTOs(suggestions []domain.Suggestion) []SuggestionDTO {
	result := make([]SuggestionDTO, len(suggestions))
	for i, s := range suggestions {
		result[i] = SuggestionDTO{
			Room: RoomDTO{
				ID:                 s.Room.ID,
				Name:               s.Room.Name,
				Capacity:           s.Room.Capacity,
				EquipmentTags:      s.Room.EquipmentTags,
				SiteID:             s.Room.SiteID,
				IsUnderMaintenance: s.Room.IsUnderMaintenance,
			},
			MatchScore:  s.MatchScore,
			Category:    string(s.Category),
			IsAvailable: s.IsAvailable,
			Conflict:    toConflictDTO(s.Conflict),
		}
	}
	return result
}

func toConflictDTO(c *domain.Conflict) *ConflictDTO {
	if c == nil {
		return nil
	}

	dto := &ConflictDTO{Reason: string(c.Reason)}

	// Синтетические конфликты (обслуживание, неактивная комната) не несут
	// деталей бронирования
	if c.BookingID != 0 {
		dto.BookingID = ptr.Ptr(c.BookingID)
		dto.BookingTitle = ptr.Ptr(c.BookingTitle)
		dto.Start = ptr.Ptr(c.Interval.Start.Format(time.RFC3339))
		dto.End = ptr.Ptr(c.Interval.End.Format(time.RFC3339))
	}

	return dto
}
