package booking

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"user_id",
	"place_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"created_at",
	"updated_at",
}

// displayOrder порядок отображения: сначала свежие даты, внутри даты по времени начала
const displayOrder = "booking_date DESC, start_time ASC"

// formatDate дата передается в postgres строкой, чтобы не зависеть от часового пояса соединения
func formatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// activeStatusExpr фильтр по активным статусам через массив postgres
func activeStatusExpr() squirrel.Sqlizer {
	return squirrel.Expr("status = ANY(?)", pq.Array(domain.StatusStrings(domain.ActiveStatuses())))
}

// buildSelectByPlaceAndDate выборка бронирований объекта на дату
// activeOnly - только активные; forUpdate - блокировка строк внутри транзакции
func buildSelectByPlaceAndDate(placeID int64, date time.Time, activeOnly, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"place_id": placeID, "booking_date": formatDate(date)})

	if activeOnly {
		builder = builder.Where(activeStatusExpr())
	}

	builder = builder.OrderBy(displayOrder)

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

// buildSelectActiveByPlacesAndDate активные бронирования нескольких объектов на дату
func buildSelectActiveByPlacesAndDate(placeIDs []int64, date time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Expr("place_id = ANY(?)", pq.Array(placeIDs))).
		Where(squirrel.Eq{"booking_date": formatDate(date)}).
		Where(activeStatusExpr()).
		OrderBy("place_id ASC", "start_time ASC").
		ToSql()
}

// buildSelectExpired активные бронирования, закончившиеся к моменту (today, now):
// дата строго раньше сегодня, либо дата сегодня и end_time <= now
func buildSelectExpired(today time.Time, now types.TimeString) (string, []interface{}, error) {
	day := formatDate(today)

	return psqlbuilder.Select("id", "status", "booking_date", "end_time").
		From(tableBookings).
		Where(activeStatusExpr()).
		Where(squirrel.Or{
			squirrel.Lt{"booking_date": day},
			squirrel.And{
				squirrel.Eq{"booking_date": day},
				squirrel.LtOrEq{"end_time": now.String()},
			},
		}).
		OrderBy("booking_date ASC", "start_time ASC", "id ASC").
		ToSql()
}

// buildUpdateStatus обновление статуса с проверкой исходного статуса
func buildUpdateStatus(id int64, from, to domain.BookingStatus) (string, []interface{}, error) {
	return psqlbuilder.Update(tableBookings).
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		Suffix("RETURNING updated_at").
		ToSql()
}
