package domain

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Shift identifies one of the two bookable shifts of a day
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
)

// Valid returns true for a known shift identifier
func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftAfternoon
}

// DisplayName returns the user-facing shift name
func (s Shift) DisplayName() string {
	switch s {
	case ShiftMorning:
		return "MANHÃ"
	case ShiftAfternoon:
		return "TARDE"
	default:
		return string(s)
	}
}

// ShiftWindow is a configured time window of one shift
// Start and End are inclusive bounds; Available toggles whether the chef
// offers this shift at all on the given day
type ShiftWindow struct {
	Start     types.TimeString
	End       types.TimeString
	Available bool
}

// IsZero returns true for an unconfigured window
func (w ShiftWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero() && !w.Available
}

// Contains returns true if t falls inside the window (inclusive bounds)
func (w ShiftWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.Start) && !t.IsAfter(w.End)
}

// DaySchedule holds the two shift windows of one weekday
type DaySchedule struct {
	Morning   ShiftWindow
	Afternoon ShiftWindow
}

// IsZero returns true if neither shift of the day is configured
func (d DaySchedule) IsZero() bool {
	return d.Morning.IsZero() && d.Afternoon.IsZero()
}

// WindowFor returns the window of the given shift
func (d DaySchedule) WindowFor(shift Shift) ShiftWindow {
	if shift == ShiftAfternoon {
		return d.Afternoon
	}
	return d.Morning
}

// WeeklySchedule is a chef's configured availability: all 7 weekdays,
// each with a morning and an afternoon window
type WeeklySchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// DayFor returns the schedule of the given weekday
// Weekday convention follows time.Weekday (Sunday = 0)
func (s WeeklySchedule) DayFor(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return s.Monday
	case time.Tuesday:
		return s.Tuesday
	case time.Wednesday:
		return s.Wednesday
	case time.Thursday:
		return s.Thursday
	case time.Friday:
		return s.Friday
	case time.Saturday:
		return s.Saturday
	case time.Sunday:
		return s.Sunday
	default:
		return DaySchedule{}
	}
}

// SetDay replaces the schedule of the given weekday
func (s *WeeklySchedule) SetDay(weekday time.Weekday, day DaySchedule) {
	switch weekday {
	case time.Monday:
		s.Monday = day
	case time.Tuesday:
		s.Tuesday = day
	case time.Wednesday:
		s.Wednesday = day
	case time.Thursday:
		s.Thursday = day
	case time.Friday:
		s.Friday = day
	case time.Saturday:
		s.Saturday = day
	case time.Sunday:
		s.Sunday = day
	}
}

// DefaultWeeklySchedule returns the schedule new chefs start with:
// morning 08:00-12:00 and afternoon 14:00-18:00, every day enabled
func DefaultWeeklySchedule() WeeklySchedule {
	day := DaySchedule{
		Morning:   ShiftWindow{Start: DefaultMorningStart, End: DefaultMorningEnd, Available: true},
		Afternoon: ShiftWindow{Start: DefaultAfternoonStart, End: DefaultAfternoonEnd, Available: true},
	}

	var schedule WeeklySchedule
	for _, weekday := range Weekdays {
		schedule.SetDay(weekday, day)
	}
	return schedule
}
