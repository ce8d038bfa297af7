package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	updateStatus "github.com/m04kA/SMC-PlaceBooking/internal/usecase/update_booking_status"
)

// BookingStatusResponse HTTP response model
type BookingStatusResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	PlaceID        int64  `json:"placeId"`
	BookingDate    string `json:"bookingDate"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *BookingStatusResponse {
	return &BookingStatusResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		PlaceID:        resp.PlaceID,
		BookingDate:    resp.Date.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		EndTime:        resp.EndTime.String(),
		Status:         resp.Status,
		PreviousStatus: resp.PreviousStatus,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
