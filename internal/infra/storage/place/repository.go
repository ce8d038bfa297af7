package place

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PlaceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

const tablePlaces = "places"

const (
	lockForShare  = "FOR SHARE"
	lockForUpdate = "FOR UPDATE"
)

var placeColumns = []string{
	"id",
	"name",
	"bio",
	"location",
	"category",
	"open_time",
	"close_time",
	"slot_duration_minutes",
	"capacity",
	"created_at",
	"updated_at",
}

// Repository репозиторий объектов бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID
// Внутри транзакции строка блокируется на чтение (FOR SHARE), чтобы расписание не менялось до коммита
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	lock := ""
	if dbmetrics.IsInTransaction(ctx) {
		lock = lockForShare
	}
	return r.getByID(ctx, id, lock, "GetByID")
}

// GetByIDForUpdate получает объект по ID с эксклюзивной блокировкой строки
// Используется перед изменением расписания: две параллельные правки выстраиваются в очередь, а не в дедлок
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Place, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, fmt.Errorf("%w: GetByIDForUpdate", ErrTransaction)
	}
	return r.getByID(ctx, id, lockForUpdate, "GetByIDForUpdate")
}

func (r *Repository) getByID(ctx context.Context, id int64, lock, op string) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectByID(id, lock)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	place, err := scanPlace(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan place: %w", ErrScanRow, op, err)
	}

	return place, nil
}

// List получает объекты с фильтрацией по категории
func (r *Repository) List(ctx context.Context, filter domain.PlaceFilter) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(placeColumns...).
		From(tablePlaces).
		OrderBy("name ASC", "id ASC")

	if filter.Category != nil {
		builder = builder.Where(squirrel.Eq{"category": string(*filter.Category)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryPlaces(ctx, executor, query, args, "List")
}

// ListOpenAt получает объекты, открытые в момент t: open_time <= t < close_time
func (r *Repository) ListOpenAt(ctx context.Context, t types.TimeString) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectOpenAt(t)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenAt - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryPlaces(ctx, executor, query, args, "ListOpenAt")
}

// UpdateSchedule сохраняет часы работы, длительность слота и вместимость объекта
func (r *Repository) UpdateSchedule(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tablePlaces).
		Set("open_time", place.OpenTime.String()).
		Set("close_time", place.CloseTime.String()).
		Set("slot_duration_minutes", place.SlotDurationMinutes).
		Set("capacity", place.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": place.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - execute update: %w", ErrExecQuery, err)
	}

	updated := *place
	updated.UpdatedAt = updatedAt.Time
	return &updated, nil
}

// buildSelectByID выборка объекта по ID; lock - необязательный суффикс блокировки строки
func buildSelectByID(id int64, lock string) (string, []interface{}, error) {
	builder := psqlbuilder.Select(placeColumns...).
		From(tablePlaces).
		Where(squirrel.Eq{"id": id})

	if lock != "" {
		builder = builder.Suffix(lock)
	}

	return builder.ToSql()
}

func buildSelectOpenAt(t types.TimeString) (string, []interface{}, error) {
	return psqlbuilder.Select(placeColumns...).
		From(tablePlaces).
		Where(squirrel.LtOrEq{"open_time": t.String()}).
		Where(squirrel.Gt{"close_time": t.String()}).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func (r *Repository) queryPlaces(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) ([]*domain.Place, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return places, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Bio,
		&place.Location,
		&place.Category,
		&place.OpenTime,
		&place.CloseTime,
		&place.SlotDurationMinutes,
		&place.Capacity,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.CreatedAt = createdAt.Time
	place.UpdatedAt = updatedAt.Time

	return &place, nil
}
