package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/booking"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo  BookingRepository
	placeRepo    PlaceRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// location - зона, в которой считается "сегодня" для статистики; nil означает time.Local
func NewService(
	bookingRepo BookingRepository,
	placeRepo PlaceRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		bookingRepo:  bookingRepo,
		placeRepo:    placeRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// GetByID получает бронирование по ID
// Бронирование видно владельцу и менеджеру его объекта, остальным - NotFound
func (s *Service) GetByID(ctx context.Context, principal domain.Principal, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, principal.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, bookingNotFound()
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !principal.CanView(booking) {
		s.logger.Warn("GetByID: booking id=%d is not visible to user=%d", id, principal.UserID)
		return nil, bookingNotFound()
	}

	return models.FromDomainBooking(booking), nil
}

// ListMine возвращает бронирования пользователя, сгруппированные по статусам
// Внутри группы порядок: дата по убыванию, затем время начала по возрастанию
func (s *Service) ListMine(ctx context.Context, principal domain.Principal, req *models.ListMyBookingsRequest) (*models.GroupedBookingsResponse, error) {
	s.logger.Info("ListMine: fetching bookings for user=%d", principal.UserID)

	var status *domain.BookingStatus
	if req != nil && req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListMine: invalid status=%q for user=%d", *req.Status, principal.UserID)
			return nil, err
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, principal.UserID, status)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%d: %v", principal.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: fetched %d bookings for user=%d", len(bookings), principal.UserID)
	return models.FromGroupedBookings(domain.GroupByStatus(bookings)), nil
}

// ListPlaceBookings возвращает все бронирования объекта на дату
// Доступно только менеджеру объекта
func (s *Service) ListPlaceBookings(ctx context.Context, principal domain.Principal, placeID int64, date time.Time) (*models.BookingListResponse, error) {
	s.logger.Info("ListPlaceBookings: place=%d, date=%s, user=%d", placeID, date.Format(domain.DateFormat), principal.UserID)

	if !principal.CanManage(placeID) {
		s.logger.Warn("ListPlaceBookings: user=%d is not a manager of place=%d", principal.UserID, placeID)
		return nil, domain.Reject(domain.ErrPermissionDenied, domain.CodeNotManager, "просмотр бронирований объекта доступен только его менеджеру")
	}

	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			return nil, domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
		}
		s.logger.Error("ListPlaceBookings: failed to get place id=%d: %v", placeID, err)
		return nil, fmt.Errorf("%w: ListPlaceBookings - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByPlaceAndDate(ctx, placeID, domain.DateOnly(date), false)
	if err != nil {
		s.logger.Error("ListPlaceBookings: repository error for place=%d: %v", placeID, err)
		return nil, fmt.Errorf("%w: ListPlaceBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// UserStats считает статистику посещений пользователя
func (s *Service) UserStats(ctx context.Context, principal domain.Principal, req *models.StatsRequest) (*models.UserStatsResponse, error) {
	s.logger.Info("UserStats: user=%d, period=%q", principal.UserID, req.Period)

	period, err := domain.ParseStatsPeriod(req.Period)
	if err != nil {
		return nil, err
	}

	var between *domain.DateRange
	switch {
	case req.From != nil && req.To != nil:
		if req.From.After(*req.To) {
			return nil, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate, "дата 'from' должна быть не позже 'to'")
		}
		between = &domain.DateRange{From: *req.From, To: *req.To}
	case req.From != nil || req.To != nil:
		return nil, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate, "параметры 'from' и 'to' передаются вместе")
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, principal.UserID, nil)
	if err != nil {
		s.logger.Error("UserStats: repository error for user=%d: %v", principal.UserID, err)
		return nil, fmt.Errorf("%w: UserStats - repository error: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now().In(s.location)
	stats := domain.ComputeUserStats(bookings, today, period, between)

	return models.FromUserStats(stats), nil
}

func bookingNotFound() error {
	return domain.Reject(domain.ErrNotFound, domain.CodeBookingNotFound, "бронирование не найдено")
}
