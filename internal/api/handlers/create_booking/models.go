package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/api/handlers"
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-PlaceBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PlaceID     int64  `json:"placeId"`
	BookingDate string `json:"date"`      // "2025-06-01"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "11:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	PlaceID     int64  `json:"placeId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ошибки парсинга возвращаются отказом вида InputFormat
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := handlers.ParseDate("date", r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := handlers.ParseTime("startTime", r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := handlers.ParseTime("endTime", r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		PlaceID:   r.PlaceID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		PlaceID:     resp.PlaceID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
