// Package models модели запросов и ответов сервиса каталога комнат
package models

import (
	"time"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// ListRoomsRequest запрос списка комнат каталога
type ListRoomsRequest struct {
	SiteID       *int64 // Фильтр по площадке (опционально)
	OnlyBookable bool   // Только комнаты, доступные для бронирования
}

// RoomResponse комната в ответе сервиса
type RoomResponse struct {
	ID                 int64
	Name               string
	Capacity           int
	EquipmentTags      []string
	SiteID             int64
	IsActive           bool
	IsUnderMaintenance bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomListResponse список комнат
type RoomListResponse struct {
	Rooms []RoomResponse
}

// FromDomainRoom конвертирует доменную комнату в ответ сервиса
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Capacity:           r.Capacity,
		EquipmentTags:      r.EquipmentTags,
		SiteID:             r.SiteID,
		IsActive:           r.IsActive,
		IsUnderMaintenance: r.IsUnderMaintenance,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список доменных комнат
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	result := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		result[i] = *FromDomainRoom(r)
	}
	return &RoomListResponse{Rooms: result}
}
