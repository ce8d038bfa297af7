package find_available_places

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
)

// UseCase use case поиска объектов, свободных в заданный момент
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

// Execute возвращает объекты, открытые в момент Time и имеющие свободное место:
// бронирований, покрывающих момент (start <= t < end), меньше вместимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailablePlaces: date=%s, time=%s", req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate, "дата обязательна, ожидается YYYY-MM-DD")
	}
	if err := req.Time.Validate(); err != nil {
		return nil, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime, "некорректное время, ожидается HH:MM")
	}

	date := domain.DateOnly(req.Date)

	// 2. Объекты, открытые в этот момент
	candidates, err := uc.placeRepo.ListOpenAt(ctx, req.Time)
	if err != nil {
		uc.logger.Error("FindAvailablePlaces: failed to list places: %v", err)
		return nil, fmt.Errorf("%w: list places: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(candidates))
	for _, p := range candidates {
		ids = append(ids, p.ID)
	}

	// 3. Активные бронирования кандидатов на дату одним запросом
	bookingsByPlace, err := uc.bookingRepo.GetActiveByPlacesAndDate(ctx, ids, date)
	if err != nil {
		uc.logger.Error("FindAvailablePlaces: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: get bookings: %v", ErrInternal, err)
	}

	// 4. Оставляем объекты со свободным местом
	places := make([]AvailablePlace, 0, len(candidates))
	for _, p := range candidates {
		bookings := bookingsByPlace[p.ID]
		if !domain.IsAvailableAt(p, bookings, req.Time) {
			continue
		}
		booked := domain.CountCovering(bookings, req.Time)
		places = append(places, AvailablePlace{
			Place:     p,
			Booked:    booked,
			Remaining: p.Capacity - booked,
		})
	}

	uc.logger.Info("FindAvailablePlaces: %d of %d open places available", len(places), len(candidates))

	return &Response{
		Date:   date,
		Time:   req.Time,
		Places: places,
	}, nil
}
