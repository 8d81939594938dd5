package rooms

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/MRB-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRB-RoomBookingService/internal/service/rooms/models"
)

// Service сервис каталога комнат (только чтение).
// Административный CRUD комнат живет вне этого сервиса.
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога комнат
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает комнаты каталога с опциональными фильтрами
func (s *Service) List(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms, siteID=%v, onlyBookable=%t", req.SiteID, req.OnlyBookable)

	if req.SiteID != nil && *req.SiteID <= 0 {
		return nil, fmt.Errorf("%w: siteID must be positive", ErrInvalidInput)
	}

	rooms, err := s.roomRepo.List(ctx, domain.RoomCatalogFilter{
		SiteID:       req.SiteID,
		OnlyBookable: req.OnlyBookable,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: room id must be positive", ErrInvalidInput)
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}
