package rooms

import (
	"context"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория каталога комнат
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomCatalogFilter) ([]*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
