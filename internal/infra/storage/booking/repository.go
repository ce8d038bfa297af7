package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PlaceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// Проверка вместимости выполняется вызывающим кодом в той же транзакции (см. LockPlaceDate)
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"user_id",
			"place_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			booking.UserID,
			booking.PlaceID,
			formatDate(booking.Date),
			booking.StartTime.String(),
			booking.EndTime.String(),
			string(booking.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает бронирования пользователя в порядке отображения
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy(displayOrder)

	if status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*status)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByPlaceAndDate получает бронирования объекта на дату в порядке отображения
// activeOnly=true - только pending/confirmed; внутри транзакции такие строки блокируются
func (r *Repository) GetByPlaceAndDate(ctx context.Context, placeID int64, date time.Time, activeOnly bool) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	forUpdate := activeOnly && dbmetrics.IsInTransaction(ctx)
	query, args, err := buildSelectByPlaceAndDate(placeID, date, activeOnly, forUpdate)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlaceAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetActiveByPlacesAndDate получает активные бронирования нескольких объектов на дату
// Результат сгруппирован по place_id
func (r *Repository) GetActiveByPlacesAndDate(ctx context.Context, placeIDs []int64, date time.Time) (map[int64][]*domain.Booking, error) {
	result := make(map[int64][]*domain.Booking, len(placeIDs))
	if len(placeIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectActiveByPlacesAndDate(placeIDs, date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPlacesAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByPlacesAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		result[b.PlaceID] = append(result[b.PlaceID], b)
	}
	return result, nil
}

// LockPlaceDate берет транзакционную advisory-блокировку на пару (объект, дата)
// Блокировка снимается при завершении транзакции; вне транзакции возвращает ErrTransaction
func (r *Repository) LockPlaceDate(ctx context.Context, placeID int64, date time.Time) error {
	tx, ok := dbmetrics.TxFromContext(ctx)
	if !ok {
		return fmt.Errorf("%w: LockPlaceDate", ErrTransaction)
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", domain.PlaceDayKey(placeID, date)); err != nil {
		return fmt.Errorf("%w: LockPlaceDate - acquire lock: %w", ErrExecQuery, err)
	}
	return nil
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Если статус успел измениться, возвращает ErrStatusConflict; если брони нет - ErrBookingNotFound
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpdateStatus(id, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); errors.Is(getErr, ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return r.GetByID(ctx, id)
}

// ListExpired возвращает активные бронирования, закончившиеся к моменту now
// now должен быть в локальной зоне, в которой заданы часы работы объектов
func (r *Repository) ListExpired(ctx context.Context, now time.Time) ([]domain.ExpiredBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectExpired(now, types.NewTimeString(now))
	if err != nil {
		return nil, fmt.Errorf("%w: ListExpired - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListExpired - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	expired := make([]domain.ExpiredBooking, 0)
	for rows.Next() {
		var item domain.ExpiredBooking
		if err := rows.Scan(&item.ID, &item.Status, &item.Date, &item.EndTime); err != nil {
			return nil, fmt.Errorf("%w: ListExpired - scan row: %w", ErrScanRow, err)
		}
		expired = append(expired, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListExpired - rows error: %w", ErrScanRow, err)
	}

	return expired, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.PlaceID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
