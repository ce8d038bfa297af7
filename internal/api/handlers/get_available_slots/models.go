package get_available_slots

import (
	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-PlaceBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                string          `json:"date"`
	PlaceID             int64           `json:"placeId"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Capacity            int             `json:"capacity"`
	Slots               []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BookedSpots    int    `json:"bookedSpots"`
	AvailableSpots int    `json:"availableSpots"`
	TotalSpots     int    `json:"totalSpots"`
	Available      bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:      slot.StartTime.String(),
			EndTime:        slot.EndTime.String(),
			BookedSpots:    slot.Booked,
			AvailableSpots: slot.Remaining,
			TotalSpots:     slot.Capacity,
			Available:      slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		PlaceID:             resp.PlaceID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Capacity:            resp.Capacity,
		Slots:               slots,
	}
}
