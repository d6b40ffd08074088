package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у шефа нет сохранённого расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrChefNotFound возвращается, когда шеф не найден
	ErrChefNotFound = errors.New("chef not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало окна позже его конца
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
