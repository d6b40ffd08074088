package availability

import "errors"

var (
	// ErrInvalidTime возвращается при некорректном формате запрошенного времени
	// Ошибка валидации входных данных, не бизнес-результат "недоступно"
	ErrInvalidTime = errors.New("availability: invalid requested time, expected HH:MM")

	// ErrInvalidDate возвращается при нулевой дате запроса
	ErrInvalidDate = errors.New("availability: invalid requested date")

	// ErrDayNotConfigured возвращается, когда в расписании нет настроек
	// для дня недели запрошенной даты (ошибка конфигурации расписания)
	ErrDayNotConfigured = errors.New("availability: schedule has no configuration for the requested day")
)
