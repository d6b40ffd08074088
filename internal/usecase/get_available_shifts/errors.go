package get_available_shifts

import "errors"

var (
	// ErrChefNotFound возвращается, когда шеф не найден
	ErrChefNotFound = errors.New("get_available_shifts: chef not found")

	// ErrDayNotConfigured возвращается, когда день отсутствует в расписании шефа
	ErrDayNotConfigured = errors.New("get_available_shifts: day is not configured in schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_shifts: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_shifts: internal error")
)
