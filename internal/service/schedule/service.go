package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	profileClient "github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/service/schedule/models"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Service сервис для работы с недельными расписаниями шефов
type Service struct {
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	validate      *validator.Validate
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		txManager:     txManager,
		validate:      validator.New(),
		logger:        logger,
	}
}

// GetSchedule получает недельное расписание шефа
// Публичный метод - клиенты смотрят расписание при выборе даты
// Если шеф ещё не настраивал расписание, возвращается дефолтное:
// утро 08:00-12:00 и вечер 14:00-18:00 каждый день
func (s *Service) GetSchedule(ctx context.Context, chefID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for chef=%d", chefID)

	schedule, err := s.scheduleRepo.GetByChefID(ctx, chefID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetSchedule: chef=%d has no stored schedule, using default", chefID)
			defaultSchedule := domain.DefaultWeeklySchedule()
			return models.FromDomainSchedule(chefID, &defaultSchedule), nil
		}
		s.logger.Error("GetSchedule: repository error for chef=%d: %v", chefID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched schedule for chef=%d", chefID)
	return models.FromDomainSchedule(chefID, schedule), nil
}

// UpdateSchedule сохраняет недельное расписание шефа
// Доступно только самому шефу
// Все 7 дней обязательны; у каждого включённого окна start <= end
func (s *Service) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("UpdateSchedule: updating schedule for chef=%d by user=%d", req.ChefID, req.UserID)

	// 1. Расписание меняет только сам шеф
	if req.UserID != req.ChefID {
		s.logger.Warn("UpdateSchedule: access denied for user=%d to chef=%d schedule", req.UserID, req.ChefID)
		return nil, ErrAccessDenied
	}

	// 2. Структурная валидация запроса
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("UpdateSchedule: struct validation failed for chef=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Валидация окон: формат времени и start <= end
	for _, nd := range req.Days() {
		if err := s.validateWindow(nd.Name, "morning", nd.Day.Morning); err != nil {
			s.logger.Warn("UpdateSchedule: window validation failed for chef=%d: %v", req.ChefID, err)
			return nil, err
		}
		if err := s.validateWindow(nd.Name, "afternoon", nd.Day.Afternoon); err != nil {
			s.logger.Warn("UpdateSchedule: window validation failed for chef=%d: %v", req.ChefID, err)
			return nil, err
		}
	}

	// 4. Проверяем существование шефа в ProfileService
	if _, err := s.profileClient.GetChef(ctx, req.ChefID); err != nil {
		if errors.Is(err, profileClient.ErrChefNotFound) {
			s.logger.Warn("UpdateSchedule: chef=%d not found", req.ChefID)
			return nil, ErrChefNotFound
		}
		s.logger.Error("UpdateSchedule: failed to get chef=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get chef: %v", ErrInternal, err)
	}

	// 5. Сохраняем все 7 дней в одной транзакции:
	// частично обновлённое расписание после сбоя недопустимо
	schedule := req.ToDomainSchedule()
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.Upsert(ctx, req.ChefID, &schedule)
	})
	if err != nil {
		s.logger.Error("UpdateSchedule: repository error for chef=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for chef=%d", req.ChefID)
	return models.FromDomainSchedule(req.ChefID, &schedule), nil
}

// validateWindow проверяет формат времени окна и порядок границ
func (s *Service) validateWindow(dayName, shiftName string, w models.ShiftWindowRequest) error {
	start := types.TimeString(w.Start)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: %s %s start %q", ErrInvalidInput, dayName, shiftName, w.Start)
	}

	end := types.TimeString(w.End)
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: %s %s end %q", ErrInvalidInput, dayName, shiftName, w.End)
	}

	if end.IsBefore(start) {
		return fmt.Errorf("%w: %s %s: %s > %s", ErrInvalidTimeRange, dayName, shiftName, w.Start, w.End)
	}

	return nil
}
