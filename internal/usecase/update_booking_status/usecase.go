package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
)

const operationName = "update_booking_status"

// UseCase use case для подтверждения, завершения и отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	placeRepo   PlaceRepository
	txManager   TransactionManager
	locks       Locker
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	placeRepo PlaceRepository,
	txManager TransactionManager,
	locks Locker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
		txManager:   txManager,
		locks:       locks,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute применяет событие к бронированию от имени принципала
// Переход в активный статус (confirm) повторно проверяет бронирование под блокировкой пары (объект, дата)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: user=%d, booking=%d, event=%s", req.Principal.UserID, req.BookingID, req.Event)

	// 1. Находим бронирование, чтобы узнать ключ блокировки
	current, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, uc.fail(uc.mapRepoError(err, req.BookingID))
	}

	// 2. Сериализуем изменения на той же паре (объект, дата)
	unlock := uc.locks.Lock(domain.PlaceDayKey(current.PlaceID, current.Date))
	defer unlock()

	var (
		result *domain.Booking
		from   domain.BookingStatus
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.LockPlaceDate(txCtx, current.PlaceID, current.Date); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to lock place=%d: %v", current.PlaceID, err)
			return fmt.Errorf("%w: lock place date: %w", ErrInternal, err)
		}

		// 3. Перечитываем бронирование под блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			return uc.mapRepoError(err, req.BookingID)
		}

		// 4. Проверяем права принципала на событие
		actor, err := req.Principal.ActorFor(booking, req.Event)
		if err != nil {
			uc.logger.Warn("UpdateBookingStatus: user=%d denied %s on booking=%d: %v",
				req.Principal.UserID, req.Event, booking.ID, err)
			return err
		}

		// 5. Проверяем переход по таблице состояний
		to, err := domain.Transition(booking.Status, req.Event, actor)
		if err != nil {
			uc.logger.Warn("UpdateBookingStatus: booking=%d: %v", booking.ID, err)
			return err
		}

		// 6. Бронирование остается активным - повторяем проверки
		if to.IsActive() {
			if err := uc.revalidate(txCtx, booking, to); err != nil {
				return err
			}
		}

		// 7. Сохраняем новый статус
		updated, err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, booking.Status, to)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				uc.logger.Warn("UpdateBookingStatus: booking=%d status changed concurrently", booking.ID)
				return domain.Reject(domain.ErrIllegalTransition, domain.CodeIllegalTransition,
					"статус бронирования изменился, повторите действие")
			}
			return uc.mapRepoError(err, booking.ID)
		}

		from = booking.Status
		result = updated
		return nil
	})

	if err != nil {
		return nil, uc.fail(err)
	}

	uc.metrics.IncTransition(string(req.Event), string(result.Status))
	uc.logger.Info("UpdateBookingStatus: booking=%d %s -> %s", result.ID, from, result.Status)

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		PlaceID:        result.PlaceID,
		Date:           result.Date,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		Status:         string(result.Status),
		PreviousStatus: string(from),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// revalidate проверяет бронирование в новом статусе против текущего состояния объекта
func (uc *UseCase) revalidate(ctx context.Context, booking *domain.Booking, to domain.BookingStatus) error {
	place, err := uc.placeRepo.GetByID(ctx, booking.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			return domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
		}
		uc.logger.Error("UpdateBookingStatus: failed to get place id=%d: %v", booking.PlaceID, err)
		return fmt.Errorf("%w: get place: %w", ErrInternal, err)
	}

	existing, err := uc.bookingRepo.GetByPlaceAndDate(ctx, booking.PlaceID, booking.Date, true)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to get bookings: %v", err)
		return fmt.Errorf("%w: get bookings: %w", ErrInternal, err)
	}

	candidate := *booking
	candidate.Status = to
	if err := domain.ValidateBooking(&candidate, domain.ValidationContext{Place: place, Existing: existing}); err != nil {
		uc.logger.Warn("UpdateBookingStatus: booking=%d no longer valid: %v", booking.ID, err)
		return err
	}
	return nil
}

func (uc *UseCase) mapRepoError(err error, bookingID int64) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Warn("UpdateBookingStatus: booking id=%d not found", bookingID)
		return domain.Reject(domain.ErrNotFound, domain.CodeBookingNotFound, "бронирование не найдено")
	}
	uc.logger.Error("UpdateBookingStatus: storage error for booking id=%d: %v", bookingID, err)
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

func (uc *UseCase) fail(err error) error {
	uc.metrics.IncRejection(operationName, domain.KindName(err))
	return err
}
