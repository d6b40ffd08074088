package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/availability"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	bookingStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
	profileClient "github.com/chefnasuacasa/CNSC-BookingService/internal/integrations/profileservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// две параллельные заявки на одну смену не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, chef=%d, menu=%d, date=%s, time=%s, people=%d",
		req.ClientID, req.ChefID, req.MenuID, req.Date.Format(domain.DateFormat), req.StartTime, req.People)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата бронирования не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем профиль шефа
	chef, err := uc.profileClient.GetChef(ctx, req.ChefID)
	if err != nil {
		if errors.Is(err, profileClient.ErrChefNotFound) {
			uc.logger.Warn("CreateBooking: chef id=%d not found", req.ChefID)
			return nil, ErrChefNotFound
		}
		uc.logger.Error("CreateBooking: failed to get chef id=%d: %v", req.ChefID, err)
		return nil, fmt.Errorf("%w: failed to get chef: %v", ErrInternal, err)
	}

	// 5. Шеф должен принимать заказы
	if !chef.IsAvailable {
		uc.logger.Warn("CreateBooking: chef id=%d is not accepting bookings", req.ChefID)
		return nil, ErrChefNotAvailable
	}

	// 6. Получаем меню и проверяем принадлежность шефу
	menu, err := uc.profileClient.GetMenu(ctx, req.MenuID)
	if err != nil {
		if errors.Is(err, profileClient.ErrMenuNotFound) {
			uc.logger.Warn("CreateBooking: menu id=%d not found", req.MenuID)
			return nil, ErrMenuNotFound
		}
		uc.logger.Error("CreateBooking: failed to get menu id=%d: %v", req.MenuID, err)
		return nil, fmt.Errorf("%w: failed to get menu: %v", ErrInternal, err)
	}

	if menu.ChefID != req.ChefID {
		uc.logger.Warn("CreateBooking: menu id=%d does not belong to chef id=%d", req.MenuID, req.ChefID)
		return nil, ErrMenuNotFound
	}

	if !menu.IsActive {
		uc.logger.Warn("CreateBooking: menu id=%d is not active", req.MenuID)
		return nil, ErrMenuNotActive
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Загружаем расписание шефа
		schedule, err := uc.scheduleRepo.GetByChefID(txCtx, req.ChefID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				// Шеф ещё не настраивал расписание - работаем по дефолтному
				defaultSchedule := domain.DefaultWeeklySchedule()
				schedule = &defaultSchedule
				uc.logger.Info("CreateBooking: chef id=%d has no stored schedule, using default", req.ChefID)
			} else {
				uc.logger.Error("CreateBooking: failed to get schedule for chef id=%d: %v", req.ChefID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
		}

		// 7.2. Получаем активные бронирования шефа на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ChefBookingsFilter{
			ChefID:          req.ChefID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByChefWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.3. Проверяем доступность смены
		check, err := availability.Check(availability.Request{
			Date: req.Date,
			Time: req.StartTime,
		}, *schedule, bookings)
		if err != nil {
			if errors.Is(err, availability.ErrDayNotConfigured) {
				uc.logger.Warn("CreateBooking: day %s not configured for chef id=%d",
					req.Date.Weekday(), req.ChefID)
				return ErrDayNotConfigured
			}
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !check.Available {
			uc.logger.Warn("CreateBooking: shift not available for chef id=%d on %s %s: %s",
				req.ChefID, req.Date.Format(domain.DateFormat), req.StartTime, check.Reason)
			return reasonToError(check.Reason)
		}

		uc.logger.Info("CreateBooking: shift %s is open for chef id=%d on %s",
			check.Shift, req.ChefID, req.Date.Format(domain.DateFormat))

		// 7.4. Создаем бронирование с денормализацией данных меню
		booking := &domain.Booking{
			ClientID:    req.ClientID,
			ChefID:      req.ChefID,
			BookingDate: req.Date,
			Shift:       check.Shift,
			StartTime:   req.StartTime,
			People:      req.People,
			Status:      domain.StatusPending,
			// Денормализация данных меню
			MenuID:         menu.ID,
			MenuName:       menu.Name,
			PricePerPerson: menu.PricePerPerson,
			TotalPrice:     menu.PricePerPerson * float64(req.People),
			// Заметки
			Notes: req.Notes,
		}

		// 7.5. Сохраняем бронирование
		// Частичный уникальный индекс по (chef_id, booking_date, shift) страхует
		// от гонки даже вне сериализуемого уровня изоляции
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrShiftTaken) {
				uc.logger.Warn("CreateBooking: shift already taken for chef id=%d on %s %s",
					req.ChefID, req.Date.Format(domain.DateFormat), check.Shift)
				return ErrShiftAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:             result.ID,
		ClientID:       result.ClientID,
		ChefID:         result.ChefID,
		BookingDate:    result.BookingDate,
		Shift:          string(result.Shift),
		ShiftName:      result.Shift.DisplayName(),
		StartTime:      result.StartTime,
		People:         result.People,
		Status:         string(result.Status),
		MenuID:         result.MenuID,
		MenuName:       result.MenuName,
		PricePerPerson: result.PricePerPerson,
		TotalPrice:     result.TotalPrice,
		Notes:          result.Notes,
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// reasonToError конвертирует код причины недоступности в ошибку usecase
func reasonToError(reason availability.Reason) error {
	switch reason {
	case availability.ReasonOutsideShiftWindows:
		return ErrOutsideShiftWindows
	case availability.ReasonShiftNotOffered:
		return ErrShiftNotOffered
	case availability.ReasonShiftAlreadyBooked:
		return ErrShiftAlreadyBooked
	default:
		return fmt.Errorf("%w: unexpected reason %q", ErrInternal, reason)
	}
}
