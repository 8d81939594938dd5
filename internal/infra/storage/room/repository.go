package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MRB-RoomBookingService/internal/domain"
	"github.com/m04kA/MRB-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/MRB-RoomBookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var roomColumns = []string{
	"id",
	"name",
	"capacity",
	"equipment_tags",
	"site_id",
	"is_active",
	"is_under_maintenance",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога комнат.
// Движок подбора рассматривает каталог как read-only источник
// статических атрибутов; административный CRUD живет в другом сервисе.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает комнаты каталога.
// Для полного списка ручного выбора вызывается без OnlyBookable:
// комнаты на обслуживании показываются пользователю с аннотацией,
// почему они недоступны.
func (r *Repository) List(ctx context.Context, filter domain.RoomCatalogFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC")

	if filter.SiteID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"site_id": *filter.SiteID})
	}

	if filter.OnlyBookable {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"is_active": true}).
			Where(squirrel.Eq{"is_under_maintenance": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		pq.Array(&room.EquipmentTags),
		&room.SiteID,
		&room.IsActive,
		&room.IsUnderMaintenance,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс комнат
func (r *Repository) scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.Name,
			&room.Capacity,
			pq.Array(&room.EquipmentTags),
			&room.SiteID,
			&room.IsActive,
			&room.IsUnderMaintenance,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time

		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
