package expire_bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
)

// UseCase use case автозавершения закончившихся бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - зона, в которой заданы часы работы объектов; nil означает time.Local
func NewUseCase(bookingRepo BookingRepository, location *time.Location, metrics Metrics, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute переводит в completed все активные бронирования, закончившиеся к текущему моменту
// Ошибка по одной записи логируется и не прерывает проход
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Текущий момент в зоне объектов
	now := uc.timeProvider.Now().In(uc.location)
	resp := &Response{AsOf: now}

	// 2. Кандидаты: дата в прошлом или сегодня с end <= now
	expired, err := uc.bookingRepo.ListExpired(ctx, now)
	if err != nil {
		uc.logger.Error("ExpireBookings: failed to list expired bookings: %v", err)
		return nil, fmt.Errorf("%w: list expired: %v", ErrInternal, err)
	}
	resp.Found = len(expired)

	// 3. Каждый переход проходит через таблицу состояний
	for _, item := range expired {
		if err := ctx.Err(); err != nil {
			uc.logger.Warn("ExpireBookings: interrupted after %d bookings: %v", resp.Completed, err)
			break
		}

		// Кандидат из выборки должен закончиться и по часам сервиса
		if !item.IsExpiredAt(now) {
			uc.logger.Warn("ExpireBookings: booking=%d has not ended as of %s, skipped", item.ID, now.Format("2006-01-02 15:04"))
			resp.Skipped++
			continue
		}

		to, err := domain.Transition(item.Status, domain.EventExpire, domain.ActorSweeper)
		if err != nil {
			uc.logger.Warn("ExpireBookings: booking=%d skipped: %v", item.ID, err)
			resp.Failed++
			continue
		}

		if _, err := uc.bookingRepo.UpdateStatus(ctx, item.ID, item.Status, to); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) || errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Info("ExpireBookings: booking=%d changed concurrently, skipped", item.ID)
				resp.Skipped++
				continue
			}
			uc.logger.Error("ExpireBookings: failed to complete booking=%d: %v", item.ID, err)
			resp.Failed++
			continue
		}

		uc.metrics.IncTransition(string(domain.EventExpire), string(to))
		resp.Completed++
	}

	uc.metrics.AddSweeperCompleted(resp.Completed)
	uc.logger.Info("ExpireBookings: as of %s completed %d of %d bookings (skipped=%d, failed=%d)",
		now.Format("2006-01-02 15:04"), resp.Completed, resp.Found, resp.Skipped, resp.Failed)

	return resp, nil
}
