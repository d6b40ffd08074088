package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/availability"
	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	bookingStorage "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/chefnasuacasa/CNSC-BookingService/internal/infra/storage/schedule"
)

// UseCase use case для переноса бронирования на другую дату или время
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос бронирования
// Проверка доступности повторяется для новой даты и времени, при этом
// переносимое бронирование не учитывается как конфликт самому себе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, user=%d, date=%s, time=%s",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата не в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("UpdateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	var result *domain.Booking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Переносить бронирование может только его клиент
		if booking.ClientID != req.UserID {
			uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 3.3. Отменённые и завершённые бронирования не переносятся
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("UpdateBooking: booking id=%d cannot be rescheduled, status=%s",
				req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		// 3.4. Загружаем расписание шефа
		schedule, err := uc.scheduleRepo.GetByChefID(txCtx, booking.ChefID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				defaultSchedule := domain.DefaultWeeklySchedule()
				schedule = &defaultSchedule
				uc.logger.Info("UpdateBooking: chef id=%d has no stored schedule, using default", booking.ChefID)
			} else {
				uc.logger.Error("UpdateBooking: failed to get schedule for chef id=%d: %v", booking.ChefID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
		}

		// 3.5. Активные бронирования шефа на новую дату с блокировкой (FOR UPDATE)
		filter := domain.ChefBookingsFilter{
			ChefID:          booking.ChefID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		existing, err := uc.bookingRepo.GetByChefWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// Переносимое бронирование не конфликтует само с собой:
		// перенос внутри своей же смены должен проходить
		others := make([]*domain.Booking, 0, len(existing))
		for _, b := range existing {
			if b.ID == booking.ID {
				continue
			}
			others = append(others, b)
		}

		// 3.6. Проверяем доступность новой смены
		check, err := availability.Check(availability.Request{
			Date: req.Date,
			Time: req.StartTime,
		}, *schedule, others)
		if err != nil {
			if errors.Is(err, availability.ErrDayNotConfigured) {
				uc.logger.Warn("UpdateBooking: day %s not configured for chef id=%d",
					req.Date.Weekday(), booking.ChefID)
				return ErrDayNotConfigured
			}
			uc.logger.Error("UpdateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}

		if !check.Available {
			uc.logger.Warn("UpdateBooking: shift not available for booking id=%d on %s %s: %s",
				req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime, check.Reason)
			return reasonToError(check.Reason)
		}

		// 3.7. Применяем изменения
		booking.BookingDate = req.Date
		booking.Shift = check.Shift
		booking.StartTime = req.StartTime
		if req.People != nil {
			booking.People = *req.People
			booking.TotalPrice = booking.PricePerPerson * float64(*req.People)
		}
		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		updated, err := uc.bookingRepo.Reschedule(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingStorage.ErrShiftTaken) {
				uc.logger.Warn("UpdateBooking: shift already taken for booking id=%d on %s %s",
					req.BookingID, req.Date.Format(domain.DateFormat), check.Shift)
				return ErrShiftAlreadyBooked
			}
			if errors.Is(err, bookingStorage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to reschedule booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully rescheduled booking id=%d to %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.Shift)

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

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.People != nil && (*req.People < domain.MinPeoplePerBooking || *req.People > domain.MaxPeoplePerBooking) {
		return fmt.Errorf("%w: people must be between %d and %d",
			ErrInvalidInput, domain.MinPeoplePerBooking, domain.MaxPeoplePerBooking)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
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
