package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
)

const operationName = "create_booking"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	placeRepo   PlaceRepository
	txManager   TransactionManager
	locks       Locker
	audit       AuditSink
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	placeRepo PlaceRepository,
	txManager TransactionManager,
	locks Locker,
	audit AuditSink,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		placeRepo:   placeRepo,
		txManager:   txManager,
		locks:       locks,
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute создает бронирование в статусе pending
// Проверка вместимости и запись выполняются атомарно для пары (объект, дата):
// блокировка внутри процесса, затем сериализуемая транзакция с advisory-блокировкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, place=%d, date=%s, time=%s-%s",
		req.UserID, req.PlaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.reject(err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Сериализуем конкурентные запросы на ту же пару (объект, дата)
	unlock := uc.locks.Lock(domain.PlaceDayKey(req.PlaceID, date))
	defer unlock()

	var result *domain.Booking

	// 3. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем пару (объект, дата) для других экземпляров сервиса
		if err := uc.bookingRepo.LockPlaceDate(txCtx, req.PlaceID, date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock place=%d date=%s: %v", req.PlaceID, date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: lock place date: %w", ErrInternal, err)
		}

		// 3.2. Получаем объект
		place, err := uc.placeRepo.GetByID(txCtx, req.PlaceID)
		if err != nil {
			if errors.Is(err, placeRepo.ErrPlaceNotFound) {
				uc.logger.Warn("CreateBooking: place id=%d not found", req.PlaceID)
				return domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
			}
			uc.logger.Error("CreateBooking: failed to get place id=%d: %v", req.PlaceID, err)
			return fmt.Errorf("%w: get place: %w", ErrInternal, err)
		}

		// 3.3. Получаем активные бронирования объекта на дату
		existing, err := uc.bookingRepo.GetByPlaceAndDate(txCtx, req.PlaceID, date, true)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: get bookings: %w", ErrInternal, err)
		}

		booking := &domain.Booking{
			UserID:    req.UserID,
			PlaceID:   req.PlaceID,
			Date:      date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Status:    domain.StatusPending,
		}

		// 3.4. Проверяем часы работы, длительность, вместимость и сетку
		if err := domain.ValidateBooking(booking, domain.ValidationContext{Place: place, Existing: existing}); err != nil {
			uc.logger.Warn("CreateBooking: validation failed: %v", err)
			return err
		}

		// 3.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.reject(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 4. Метрики и журнал аудита
	uc.metrics.IncBookingCreated()
	uc.audit.Notify(result.UserID, domain.AuditActionBookingCreated, domain.BookingRef(result.ID))

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		PlaceID:   result.PlaceID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

func (uc *UseCase) reject(err error) {
	uc.metrics.IncRejection(operationName, domain.KindName(err))
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return domain.Reject(domain.ErrPermissionDenied, domain.CodeNotOwner, "пользователь не определен")
	}
	if req.PlaceID <= 0 {
		return domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
	}
	if req.Date.IsZero() {
		return domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate, "дата обязательна, ожидается YYYY-MM-DD")
	}
	if err := req.StartTime.Validate(); err != nil {
		return domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime, "некорректное время начала, ожидается HH:MM")
	}
	if err := req.EndTime.Validate(); err != nil {
		return domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime, "некорректное время окончания, ожидается HH:MM")
	}
	return nil
}
