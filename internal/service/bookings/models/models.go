package models

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// Request модели

// ListMyBookingsRequest запрос на получение своих бронирований
type ListMyBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// StatsRequest запрос статистики пользователя
type StatsRequest struct {
	Period string     `json:"period,omitempty"` // week, month, year или пусто - все периоды
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	PlaceID     int64     `json:"placeId"`
	BookingDate string    `json:"bookingDate"` // "2025-06-01"
	StartTime   string    `json:"startTime"`   // "10:00"
	EndTime     string    `json:"endTime"`     // "11:00"
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// GroupedBookingsResponse бронирования пользователя по статусам; все ключи присутствуют всегда
type GroupedBookingsResponse struct {
	Pending   []BookingResponse `json:"pending"`
	Confirmed []BookingResponse `json:"confirmed"`
	Completed []BookingResponse `json:"completed"`
	Cancelled []BookingResponse `json:"cancelled"`
	Total     int               `json:"total"`
}

// UserStatsResponse статистика посещений пользователя
type UserStatsResponse struct {
	TotalBookings       int            `json:"totalBookings"`
	TotalCompleted      int            `json:"totalCompleted"`
	UniquePlacesVisited int            `json:"uniquePlacesVisited"`
	CompletedInPeriod   map[string]int `json:"completedInPeriod"`
	CompletedBetween    *int           `json:"completedBetween,omitempty"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		PlaceID:     b.PlaceID,
		BookingDate: b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	return &BookingListResponse{Bookings: toResponses(bookings)}
}

// FromGroupedBookings конвертирует группировку по статусам в DTO
func FromGroupedBookings(grouped domain.BookingsByStatus) *GroupedBookingsResponse {
	resp := &GroupedBookingsResponse{
		Pending:   toResponses(grouped[domain.StatusPending]),
		Confirmed: toResponses(grouped[domain.StatusConfirmed]),
		Completed: toResponses(grouped[domain.StatusCompleted]),
		Cancelled: toResponses(grouped[domain.StatusCancelled]),
	}
	resp.Total = len(resp.Pending) + len(resp.Confirmed) + len(resp.Completed) + len(resp.Cancelled)
	return resp
}

// FromUserStats конвертирует статистику в DTO
func FromUserStats(stats domain.UserStats) *UserStatsResponse {
	byPeriod := make(map[string]int, len(stats.CompletedByPeriod))
	for period, count := range stats.CompletedByPeriod {
		byPeriod[string(period)] = count
	}

	return &UserStatsResponse{
		TotalBookings:       stats.TotalBookings,
		TotalCompleted:      stats.TotalCompleted,
		UniquePlacesVisited: stats.UniquePlacesVisited,
		CompletedInPeriod:   byPeriod,
		CompletedBetween:    stats.CompletedBetween,
	}
}

func toResponses(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
