package get_room

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/service/rooms/models"
)

// RoomResponse HTTP response model
type RoomResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Capacity           int      `json:"capacity"`
	EquipmentTags      []string `json:"equipmentTags"`
	SiteID             int64    `json:"siteId"`
	IsActive           bool     `json:"isActive"`
	IsUnderMaintenance bool     `json:"isUnderMaintenance"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.RoomResponse) *RoomResponse {
	return &RoomResponse{
		ID:                 resp.ID,
		Name:               resp.Name,
		Capacity:           resp.Capacity,
		EquipmentTags:      resp.EquipmentTags,
		SiteID:             resp.SiteID,
		IsActive:           resp.IsActive,
		IsUnderMaintenance: resp.IsUnderMaintenance,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
