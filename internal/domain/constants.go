package domain

import (
	"time"

	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

// Default shift windows for a freshly registered chef
const (
	DefaultMorningStart   types.TimeString = "08:00"
	DefaultMorningEnd     types.TimeString = "12:00"
	DefaultAfternoonStart types.TimeString = "14:00"
	DefaultAfternoonEnd   types.TimeString = "18:00"
)

// Business validation constants
const (
	MinPeoplePerBooking = 1
	MaxPeoplePerBooking = 50

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekdays все дни недели в порядке хранения расписания (понедельник первым)
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// ActiveStatuses статусы, которые занимают смену
// Используются для проверки конфликтов при бронировании
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, которые не блокируют смену
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledByChef,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelledByClient,
	StatusCancelledByChef,
}
