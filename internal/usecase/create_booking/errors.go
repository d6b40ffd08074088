package create_booking

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден
	ErrChefNotFound = errors.New("create_booking: chef not found")

	// ErrChefNotAvailable возвращается, когда шеф временно не принимает заказы
	ErrChefNotAvailable = errors.New("create_booking: chef is not accepting bookings")

	// ErrMenuNotFound возвращается, когда меню не найдено или принадлежит другому шефу
	ErrMenuNotFound = errors.New("create_booking: menu not found")

	// ErrMenuNotActive возвращается, когда меню снято с публикации
	ErrMenuNotActive = errors.New("create_booking: menu is not active")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrDayNotConfigured возвращается, когда день отсутствует в расписании шефа
	ErrDayNotConfigured = errors.New("create_booking: day is not configured in schedule")

	// ErrOutsideShiftWindows возвращается, когда время не попадает ни в одну смену
	ErrOutsideShiftWindows = errors.New("create_booking: time is outside shift windows")

	// ErrShiftNotOffered возвращается, когда смена отключена шефом на этот день
	ErrShiftNotOffered = errors.New("create_booking: shift is not offered on this day")

	// ErrShiftAlreadyBooked возвращается, когда смена занята активным бронированием
	ErrShiftAlreadyBooked = errors.New("create_booking: shift is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
