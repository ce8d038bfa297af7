package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
)

// UseCase use case для получения занятости слотов объекта на дату
type UseCase struct {
	bookingRepo BookingRepository
	placeRepo   PlaceRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, placeRepo PlaceRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
		logger:      logger,
	}
}

// Execute возвращает каждый слот сетки объекта с количеством пересекающихся активных бронирований
// Чтение без блокировок: результат может отставать от параллельных записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: place=%d, date=%s", req.PlaceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate, "дата обязательна, ожидается YYYY-MM-DD")
	}

	// 2. Получаем объект
	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("GetAvailableSlots: place id=%d not found", req.PlaceID)
			return nil, domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
		}
		uc.logger.Error("GetAvailableSlots: failed to get place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: get place: %v", ErrInternal, err)
	}

	date := domain.DateOnly(req.Date)

	// 3. Получаем активные бронирования на дату
	bookings, err := uc.bookingRepo.GetByPlaceAndDate(ctx, place.ID, date, true)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем занятость по сетке
	availability := domain.CalculateSlotAvailability(place, bookings)

	slots := make([]Slot, 0, len(availability))
	for _, a := range availability {
		slots = append(slots, Slot{
			StartTime: a.Slot.Start,
			EndTime:   a.Slot.End,
			Booked:    a.Booked,
			Capacity:  a.Capacity,
			Remaining: a.Remaining(),
			Available: a.Available(),
		})
	}

	uc.logger.Info("GetAvailableSlots: place=%d, %d slots, %d active bookings", place.ID, len(slots), len(bookings))

	return &Response{
		PlaceID:             place.ID,
		Date:                date,
		SlotDurationMinutes: place.SlotDurationMinutes,
		Capacity:            place.Capacity,
		Slots:               slots,
	}, nil
}
