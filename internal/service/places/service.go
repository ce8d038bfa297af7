package places

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	placeRepo "github.com/m04kA/SMC-PlaceBooking/internal/infra/storage/place"
	"github.com/m04kA/SMC-PlaceBooking/internal/service/places/models"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

// Service сервис для работы с объектами
type Service struct {
	placeRepo PlaceRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса объектов
func NewService(placeRepo PlaceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		placeRepo: placeRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает объекты, опционально отфильтрованные по категории
func (s *Service) List(ctx context.Context, req *models.ListPlacesRequest) (*models.PlaceListResponse, error) {
	var filter domain.PlaceFilter
	if req != nil && req.Category != nil {
		category, err := domain.ParsePlaceCategory(*req.Category)
		if err != nil {
			s.logger.Warn("List: invalid category=%q", *req.Category)
			return nil, err
		}
		filter.Category = &category
	}

	places, err := s.placeRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d places", len(places))
	return models.FromDomainPlaceList(places), nil
}

// GetByID получает объект по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PlaceResponse, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomainPlace(place), nil
}

// UpdateSchedule частично обновляет часы работы, длительность слота и вместимость объекта
// Доступно только менеджеру объекта; итоговое расписание проверяется целиком
func (s *Service) UpdateSchedule(ctx context.Context, principal domain.Principal, placeID int64, req *models.UpdatePlaceRequest) (*models.PlaceResponse, error) {
	s.logger.Info("UpdateSchedule: place=%d by user=%d", placeID, principal.UserID)

	// 1. Проверяем права
	if !principal.CanManage(placeID) {
		s.logger.Warn("UpdateSchedule: user=%d is not a manager of place=%d", principal.UserID, placeID)
		return nil, domain.Reject(domain.ErrPermissionDenied, domain.CodeNotManager, "изменение объекта доступно только его менеджеру")
	}

	// 2. Разбираем запрос
	update, err := toScheduleUpdate(req)
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid request for place=%d: %v", placeID, err)
		return nil, err
	}

	var result *domain.Place

	// 3. Блокируем строку, применяем и сохраняем в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		place, err := s.placeRepo.GetByIDForUpdate(txCtx, placeID)
		if err != nil {
			return s.mapRepoError("UpdateSchedule", placeID, err)
		}

		updated := update.ApplyTo(place)
		if err := updated.ValidateSchedule(); err != nil {
			s.logger.Warn("UpdateSchedule: schedule for place=%d rejected: %v", placeID, err)
			return err
		}

		saved, err := s.placeRepo.UpdateSchedule(txCtx, updated)
		if err != nil {
			return s.mapRepoError("UpdateSchedule", placeID, err)
		}

		result = saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSchedule: place=%d updated: %s-%s, slot=%d, capacity=%d",
		result.ID, result.OpenTime, result.CloseTime, result.SlotDurationMinutes, result.Capacity)
	return models.FromDomainPlace(result), nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, placeRepo.ErrPlaceNotFound) {
		s.logger.Warn("%s: place id=%d not found", op, id)
		return domain.Reject(domain.ErrNotFound, domain.CodePlaceNotFound, "объект не найден")
	}
	s.logger.Error("%s: repository error for place id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func toScheduleUpdate(req *models.UpdatePlaceRequest) (domain.PlaceScheduleUpdate, error) {
	var update domain.PlaceScheduleUpdate
	if req == nil {
		return update, domain.Reject(domain.ErrInputFormat, domain.CodeEmptyUpdate, "не передано ни одного поля для изменения")
	}

	if req.OpenTime != nil {
		t, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return update, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime, "некорректное время открытия, ожидается HH:MM")
		}
		update.OpenTime = &t
	}
	if req.CloseTime != nil {
		t, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return update, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime, "некорректное время закрытия, ожидается HH:MM")
		}
		update.CloseTime = &t
	}
	update.SlotDurationMinutes = req.SlotDurationMinutes
	update.Capacity = req.Capacity

	if update.IsEmpty() {
		return update, domain.Reject(domain.ErrInputFormat, domain.CodeEmptyUpdate, "не передано ни одного поля для изменения")
	}
	return update, nil
}
