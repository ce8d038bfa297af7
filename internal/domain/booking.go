package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Booking бронирование объекта пользователем на интервал [StartTime, EndTime) даты Date
type Booking struct {
	ID        int64
	UserID    int64
	PlaceID   int64
	Date      time.Time // значимы только год, месяц и день
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range интервал бронирования
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// IsActive true, если бронирование занимает вместимость
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// IsExpiredAt true, если активное бронирование уже закончилось к моменту now:
// дата строго в прошлом, либо дата сегодня и end <= текущего времени.
// now должен быть в той же временной зоне, что и часы работы объектов.
func (b *Booking) IsExpiredAt(now time.Time) bool {
	if !b.IsActive() {
		return false
	}
	switch CompareDates(b.Date, now) {
	case -1:
		return true
	case 0:
		return !b.EndTime.IsAfter(types.NewTimeString(now))
	default:
		return false
	}
}

// BookingsByStatus бронирования, сгруппированные по статусу
type BookingsByStatus map[BookingStatus][]*Booking

// GroupByStatus группирует бронирования; все статусы присутствуют в результате, порядок внутри группы сохраняется
func GroupByStatus(bookings []*Booking) BookingsByStatus {
	grouped := make(BookingsByStatus, len(allStatuses))
	for _, s := range allStatuses {
		grouped[s] = make([]*Booking, 0)
	}
	for _, b := range bookings {
		grouped[b.Status] = append(grouped[b.Status], b)
	}
	return grouped
}

// ExpiredBooking кандидат на автозавершение
type ExpiredBooking struct {
	ID      int64
	Status  BookingStatus
	Date    time.Time
	EndTime types.TimeString
}

// IsExpiredAt проверяет кандидата тем же правилом, что и Booking.IsExpiredAt
func (e ExpiredBooking) IsExpiredAt(now time.Time) bool {
	b := Booking{ID: e.ID, Status: e.Status, Date: e.Date, EndTime: e.EndTime}
	return b.IsExpiredAt(now)
}

// CompareDates сравнивает только календарные даты: -1, 0 или 1
func CompareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// DateOnly отбрасывает время суток, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// PlaceDayKey ключ пары (объект, дата), на которой сериализуются записи
func PlaceDayKey(placeID int64, date time.Time) string {
	return fmt.Sprintf("place:%d:%s", placeID, date.Format(DateFormat))
}
