// Package availability реализует проверку доступности смен шефа.
//
// Смена (утро или вечер) конкретной даты - атомарный слот: её занимает
// не более одного активного (pending/confirmed) бронирования. Проверка -
// чистая функция над запросом, недельным расписанием шефа и снимком
// существующих бронирований: без часов, без I/O и без состояния, поэтому
// повторный вызов с теми же аргументами всегда дает тот же результат.
//
// День недели определяется по time.Weekday (воскресенье = 0). Дата
// трактуется как календарная тройка год/месяц/день: парсинг через
// time.Parse(domain.DateFormat, ...) дает полночь UTC, и никаких
// преобразований таймзон дальше не происходит.
package availability

import (
	"fmt"
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Reason код причины недоступности смены
type Reason string

const (
	// ReasonOutsideShiftWindows время не попадает ни в одну смену дня
	ReasonOutsideShiftWindows Reason = "outside_shift_windows"

	// ReasonShiftNotOffered смена отключена шефом на этот день недели
	ReasonShiftNotOffered Reason = "shift_not_offered"

	// ReasonShiftAlreadyBooked смена уже занята активным бронированием
	ReasonShiftAlreadyBooked Reason = "shift_already_booked"
)

// Message возвращает сообщение причины для пользователя
func (r Reason) Message() string {
	switch r {
	case ReasonOutsideShiftWindows:
		return "horário fora dos turnos configurados"
	case ReasonShiftNotOffered:
		return "turno não disponível neste dia"
	case ReasonShiftAlreadyBooked:
		return "turno já possui agendamento confirmado ou pendente"
	default:
		return string(r)
	}
}

// Request запрос на проверку доступности
type Request struct {
	Date time.Time        // Календарная дата (используются только год/месяц/день)
	Time types.TimeString // Запрошенное время в формате HH:MM
}

// Result результат проверки доступности
// Либо Available=true с определенной сменой и её окном,
// либо Available=false с кодом причины
type Result struct {
	Available bool
	Shift     domain.Shift       // Смена, в которую попало время (пустая для ReasonOutsideShiftWindows)
	Window    domain.ShiftWindow // Окно определенной смены
	Reason    Reason             // Заполнено только при Available=false

	// ConflictingWindow окно занятой смены (для отображения клиенту)
	// Заполнено только при ReasonShiftAlreadyBooked
	ConflictingWindow *domain.ShiftWindow
}

// Check классифицирует запрос против расписания шефа и существующих бронирований
//
// Порядок проверок фиксирован:
//  1. Определяем день недели по дате запроса
//  2. Классифицируем время в смену по окнам дня (границы включительно);
//     не попало ни в одну - недоступно, ReasonOutsideShiftWindows
//  3. Смена отключена (Available=false) - недоступно, ReasonShiftNotOffered
//  4. На эту дату и смену уже есть активное бронирование - недоступно,
//     ReasonShiftAlreadyBooked
//  5. Иначе доступно
//
// Некорректное время - ошибка ErrInvalidTime, день без конфигурации в
// расписании - ErrDayNotConfigured; оба случая отличаются от бизнес-результата
// "недоступно" и прерывают проверку немедленно
func Check(req Request, schedule domain.WeeklySchedule, bookings []*domain.Booking) (*Result, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidDate
	}
	if err := req.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 1. День недели запрошенной даты
	day := schedule.DayFor(req.Date.Weekday())
	if day.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrDayNotConfigured, req.Date.Weekday())
	}

	// 2. Классифицируем время в смену
	shift, window, ok := classifyTime(req.Time, day)
	if !ok {
		return &Result{
			Available: false,
			Reason:    ReasonOutsideShiftWindows,
		}, nil
	}

	// 3. Смена должна быть включена на этот день
	if !window.Available {
		return &Result{
			Available: false,
			Shift:     shift,
			Window:    window,
			Reason:    ReasonShiftNotOffered,
		}, nil
	}

	// 4. Эксклюзивность: одна активная бронь на (дата, смена)
	// Достаточно любой конфликтующей записи, состояние данных не чиним
	if conflict := findActiveBooking(req.Date, shift, bookings); conflict != nil {
		return &Result{
			Available:         false,
			Shift:             shift,
			Window:            window,
			Reason:            ReasonShiftAlreadyBooked,
			ConflictingWindow: &window,
		}, nil
	}

	// 5. Смена свободна
	return &Result{
		Available: true,
		Shift:     shift,
		Window:    window,
	}, nil
}

// ShiftAvailability состояние одной смены дня для списка доступных смен
type ShiftAvailability struct {
	Shift  domain.Shift
	Name   string // Отображаемое имя смены (MANHÃ / TARDE)
	Window domain.ShiftWindow
	Open   bool   // Смена включена и не занята
	Reason Reason // Заполнено только при Open=false
}

// AvailableShifts возвращает состояние обеих смен запрошенной даты
// Используется формой бронирования для показа вариантов клиенту
func AvailableShifts(date time.Time, schedule domain.WeeklySchedule, bookings []*domain.Booking) ([]ShiftAvailability, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	day := schedule.DayFor(date.Weekday())
	if day.IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrDayNotConfigured, date.Weekday())
	}

	shifts := []domain.Shift{domain.ShiftMorning, domain.ShiftAfternoon}
	result := make([]ShiftAvailability, 0, len(shifts))

	for _, shift := range shifts {
		window := day.WindowFor(shift)

		entry := ShiftAvailability{
			Shift:  shift,
			Name:   shift.DisplayName(),
			Window: window,
		}

		switch {
		case !window.Available:
			entry.Reason = ReasonShiftNotOffered
		case findActiveBooking(date, shift, bookings) != nil:
			entry.Reason = ReasonShiftAlreadyBooked
		default:
			entry.Open = true
		}

		result = append(result, entry)
	}

	return result, nil
}

// classifyTime определяет смену, в окно которой попадает время
// Границы окон включительны; при пересекающихся окнах утро проверяется первым
// Время в разрыве между сменами не округляется к ближайшей смене
func classifyTime(t types.TimeString, day domain.DaySchedule) (domain.Shift, domain.ShiftWindow, bool) {
	if isWindowConfigured(day.Morning) && day.Morning.Contains(t) {
		return domain.ShiftMorning, day.Morning, true
	}
	if isWindowConfigured(day.Afternoon) && day.Afternoon.Contains(t) {
		return domain.ShiftAfternoon, day.Afternoon, true
	}
	return "", domain.ShiftWindow{}, false
}

// isWindowConfigured отличает настроенное окно от пустого
// Окно без времени начала и конца не участвует в классификации
func isWindowConfigured(w domain.ShiftWindow) bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// findActiveBooking ищет активное бронирование на ту же дату и смену
func findActiveBooking(date time.Time, shift domain.Shift, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.Shift != shift {
			continue
		}
		if isSameDay(booking.BookingDate, date) {
			return booking
		}
	}
	return nil
}

// isSameDay сравнивает календарные даты без учета времени и таймзоны
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
