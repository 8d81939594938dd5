package list_rooms

import (
	"github.com/m04kA/MRB-RoomBookingService/internal/service/rooms/models"
)

// RoomDTO комната каталога
type RoomDTO struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Capacity           int      `json:"capacity"`
	EquipmentTags      []string `json:"equipmentTags"`
	SiteID             int64    `json:"siteId"`
	IsActive           bool     `json:"isActive"`
	IsUnderMaintenance bool     `json:"isUnderMaintenance"`
}

// RoomListResponse HTTP response model
type RoomListResponse struct {
	Rooms []RoomDTO `json:"rooms"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RoomListResponse) *RoomListResponse {
	rooms := make([]RoomDTO, len(resp.Rooms))
	for i, r := range resp.Rooms {
		rooms[i] = RoomDTO{
			ID:                 r.ID,
			Name:               r.Name,
			Capacity:           r.Capacity,
			EquipmentTags:      r.EquipmentTags,
			SiteID:             r.SiteID,
			IsActive:           r.IsActive,
			IsUnderMaintenance: r.IsUnderMaintenance,
		}
	}
	return &RoomListResponse{Rooms: rooms}
}
