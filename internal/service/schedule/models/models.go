package models

import (
	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Request модели

// ShiftWindowRequest окно одной смены в запросе обновления расписания
type ShiftWindowRequest struct {
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	Available bool   `json:"available"`
}

// DayScheduleRequest окна одного дня недели
type DayScheduleRequest struct {
	Morning   ShiftWindowRequest `json:"morning" validate:"required"`
	Afternoon ShiftWindowRequest `json:"afternoon" validate:"required"`
}

// UpdateScheduleRequest запрос на обновление недельного расписания шефа
// Все 7 дней обязательны - частичное расписание не принимается
type UpdateScheduleRequest struct {
	UserID int64 `json:"userId"`
	ChefID int64 `json:"chefId"`

	Monday    DayScheduleRequest `json:"monday" validate:"required"`
	Tuesday   DayScheduleRequest `json:"tuesday" validate:"required"`
	Wednesday DayScheduleRequest `json:"wednesday" validate:"required"`
	Thursday  DayScheduleRequest `json:"thursday" validate:"required"`
	Friday    DayScheduleRequest `json:"friday" validate:"required"`
	Saturday  DayScheduleRequest `json:"saturday" validate:"required"`
	Sunday    DayScheduleRequest `json:"sunday" validate:"required"`
}

// NamedDay день недели вместе с его именем из JSON запроса
type NamedDay struct {
	Name string
	Day  DayScheduleRequest
}

// Days возвращает дни запроса в порядке domain.Weekdays (понедельник первый),
// чтобы первая ошибка валидации всегда указывала на один и тот же день
func (r *UpdateScheduleRequest) Days() []NamedDay {
	return []NamedDay{
		{Name: "monday", Day: r.Monday},
		{Name: "tuesday", Day: r.Tuesday},
		{Name: "wednesday", Day: r.Wednesday},
		{Name: "thursday", Day: r.Thursday},
		{Name: "friday", Day: r.Friday},
		{Name: "saturday", Day: r.Saturday},
		{Name: "sunday", Day: r.Sunday},
	}
}

// ToDomainSchedule конвертирует запрос в доменное расписание
// Валидация формата времени должна быть выполнена до вызова
func (r *UpdateScheduleRequest) ToDomainSchedule() domain.WeeklySchedule {
	return domain.WeeklySchedule{
		Monday:    toDomainDay(r.Monday),
		Tuesday:   toDomainDay(r.Tuesday),
		Wednesday: toDomainDay(r.Wednesday),
		Thursday:  toDomainDay(r.Thursday),
		Friday:    toDomainDay(r.Friday),
		Saturday:  toDomainDay(r.Saturday),
		Sunday:    toDomainDay(r.Sunday),
	}
}

func toDomainDay(d DayScheduleRequest) domain.DaySchedule {
	return domain.DaySchedule{
		Morning: domain.ShiftWindow{
			Start:     types.TimeString(d.Morning.Start),
			End:       types.TimeString(d.Morning.End),
			Available: d.Morning.Available,
		},
		Afternoon: domain.ShiftWindow{
			Start:     types.TimeString(d.Afternoon.Start),
			End:       types.TimeString(d.Afternoon.End),
			Available: d.Afternoon.Available,
		},
	}
}

// Response модели

// ShiftWindowResponse окно одной смены в ответе
type ShiftWindowResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// DayScheduleResponse окна одного дня недели в ответе
type DayScheduleResponse struct {
	Morning   ShiftWindowResponse `json:"morning"`
	Afternoon ShiftWindowResponse `json:"afternoon"`
}

// ScheduleResponse недельное расписание шефа
type ScheduleResponse struct {
	ChefID int64 `json:"chefId"`

	Monday    DayScheduleResponse `json:"monday"`
	Tuesday   DayScheduleResponse `json:"tuesday"`
	Wednesday DayScheduleResponse `json:"wednesday"`
	Thursday  DayScheduleResponse `json:"thursday"`
	Friday    DayScheduleResponse `json:"friday"`
	Saturday  DayScheduleResponse `json:"saturday"`
	Sunday    DayScheduleResponse `json:"sunday"`
}

// FromDomainSchedule конвертирует доменное расписание в DTO
func FromDomainSchedule(chefID int64, s *domain.WeeklySchedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	return &ScheduleResponse{
		ChefID:    chefID,
		Monday:    fromDomainDay(s.Monday),
		Tuesday:   fromDomainDay(s.Tuesday),
		Wednesday: fromDomainDay(s.Wednesday),
		Thursday:  fromDomainDay(s.Thursday),
		Friday:    fromDomainDay(s.Friday),
		Saturday:  fromDomainDay(s.Saturday),
		Sunday:    fromDomainDay(s.Sunday),
	}
}

func fromDomainDay(d domain.DaySchedule) DayScheduleResponse {
	return DayScheduleResponse{
		Morning: ShiftWindowResponse{
			Start:     d.Morning.Start.String(),
			End:       d.Morning.End.String(),
			Available: d.Morning.Available,
		},
		Afternoon: ShiftWindowResponse{
			Start:     d.Afternoon.Start.String(),
			End:       d.Afternoon.End.String(),
			Available: d.Afternoon.Available,
		},
	}
}
