package domain

import "time"

// Room represents a bookable meeting room with its static attributes.
// The engine treats rooms as read-only input per evaluation; ownership
// belongs to the catalog repository.
type Room struct {
	ID                 int64
	Name               string
	Capacity           int
	EquipmentTags      []string // unique, order irrelevant
	SiteID             int64
	IsActive           bool
	IsUnderMaintenance bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room can accept reservations at all.
// A room under maintenance or operationally disabled is never available,
// regardless of its calendar state.
func (r *Room) IsBookable() bool {
	return r.IsActive && !r.IsUnderMaintenance
}

// HasEquipment returns true if the room carries the given equipment tag.
func (r *Room) HasEquipment(tag string) bool {
	for _, t := range r.EquipmentTags {
		if t == tag {
			return true
		}
	}
	return false
}

// FitsAttendees returns true if the room can physically hold the party.
func (r *Room) FitsAttendees(attendeeCount int) bool {
	return r.Capacity >= attendeeCount
}

// RoomCatalogFilter фильтр для получения списка комнат каталога
type RoomCatalogFilter struct {
	SiteID       *int64 // Фильтр по площадке (опционально)
	OnlyBookable bool   // Только активные комнаты не на обслуживании
}
