package get_available_shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/availability"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	profileClient "github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
)

// UseCase use case для получения состояния смен шефа на дату
// Используется формой бронирования: клиент видит оба окна дня
// и то, какие из них свободны
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		logger:        logger,
	}
}

// Execute выполняет use case получения смен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableShifts: chef=%d, date=%s", req.ChefID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.ChefID <= 0 {
		return nil, fmt.Errorf("%w: chefID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем существование шефа
	if _, err := uc.profileClient.GetChef(ctx, req.ChefID); err != nil {
		if errors.Is(err, profileClient.ErrChefNotFound) {
			uc.logger.Warn("GetAvailableShifts: chef id=%d not found", req.ChefID)
			return nil, ErrChefNotFound
		}
		uc.logger.Error("GetAvailableShifts: failed to get chef id=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get chef: %v", ErrInternal, err)
	}

	// 3. Загружаем расписание шефа
	schedule, err := uc.scheduleRepo.GetByChefID(ctx, req.ChefID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			defaultSchedule := domain.DefaultWeeklySchedule()
			schedule = &defaultSchedule
			uc.logger.Info("GetAvailableShifts: chef id=%d has no stored schedule, using default", req.ChefID)
		} else {
			uc.logger.Error("GetAvailableShifts: failed to get schedule for chef id=%d: %v", req.ChefID, err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	// 4. Активные бронирования шефа на эту дату
	filter := domain.ChefBookingsFilter{
		ChefID:          req.ChefID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByChefWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableShifts: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Состояние обеих смен даты
	shifts, err := availability.AvailableShifts(req.Date, *schedule, bookings)
	if err != nil {
		if errors.Is(err, availability.ErrDayNotConfigured) {
			uc.logger.Warn("GetAvailableShifts: day %s not configured for chef id=%d",
				req.Date.Weekday(), req.ChefID)
			return nil, ErrDayNotConfigured
		}
		uc.logger.Error("GetAvailableShifts: availability check failed: %v", err)
		return nil, fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}

	resp := &Response{
		ChefID: req.ChefID,
		Date:   req.Date,
		Shifts: make([]Shift, 0, len(shifts)),
	}

	for _, s := range shifts {
		entry := Shift{
			Shift:     string(s.Shift),
			Name:      s.Name,
			Start:     s.Window.Start.String(),
			End:       s.Window.End.String(),
			Available: s.Open,
		}
		if !s.Open {
			entry.Reason = s.Reason.Message()
		}
		resp.Shifts = append(resp.Shifts, entry)
	}

	uc.logger.Info("GetAvailableShifts: chef=%d date=%s, %d shifts returned",
		req.ChefID, req.Date.Format(domain.DateFormat), len(resp.Shifts))
	return resp, nil
}
