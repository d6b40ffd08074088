package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому клиенту
	ErrAccessDenied = errors.New("update_booking: access denied")

	// ErrCannotReschedule возвращается, когда бронирование нельзя перенести
	ErrCannotReschedule = errors.New("update_booking: booking cannot be rescheduled")

	// ErrDateInPast возвращается, когда новая дата уже прошла
	ErrDateInPast = errors.New("update_booking: booking date is in the past")

	// ErrDayNotConfigured возвращается, когда день отсутствует в расписании шефа
	ErrDayNotConfigured = errors.New("update_booking: day is not configured in schedule")

	// ErrOutsideShiftWindows возвращается, когда время не попадает ни в одну смену
	ErrOutsideShiftWindows = errors.New("update_booking: time is outside shift windows")

	// ErrShiftNotOffered возвращается, когда смена отключена шефом на этот день
	ErrShiftNotOffered = errors.New("update_booking: shift is not offered on this day")

	// ErrShiftAlreadyBooked возвращается, когда смена занята другим активным бронированием
	ErrShiftAlreadyBooked = errors.New("update_booking: shift is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
