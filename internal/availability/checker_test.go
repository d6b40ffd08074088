package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnasuacasa/CNSC-BookingService/internal/domain"
	"github.com/chefnasuacasa/CNSC-BookingService/pkg/types"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

// testSchedule: morning 08:00-12:00 and afternoon 14:00-18:00 every day,
// except Sunday where the afternoon shift is switched off
func testSchedule() domain.WeeklySchedule {
	schedule := domain.DefaultWeeklySchedule()
	schedule.Sunday.Afternoon.Available = false
	return schedule
}

func TestCheck_BoundaryInclusion(t *testing.T) {
	monday := mustDate(t, "2024-01-15") // Monday

	tests := []struct {
		name          string
		time          types.TimeString
		wantAvailable bool
		wantShift     domain.Shift
		wantReason    Reason
	}{
		{name: "exact shift start", time: "08:00", wantAvailable: true, wantShift: domain.ShiftMorning},
		{name: "exact shift end", time: "12:00", wantAvailable: true, wantShift: domain.ShiftMorning},
		{name: "minute before start", time: "07:59", wantAvailable: false, wantReason: ReasonOutsideShiftWindows},
		{name: "minute after end", time: "12:01", wantAvailable: false, wantReason: ReasonOutsideShiftWindows},
		{name: "inside morning", time: "09:30", wantAvailable: true, wantShift: domain.ShiftMorning},
		{name: "afternoon start", time: "14:00", wantAvailable: true, wantShift: domain.ShiftAfternoon},
		{name: "afternoon end", time: "18:00", wantAvailable: true, wantShift: domain.ShiftAfternoon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Check(Request{Date: monday, Time: tt.time}, testSchedule(), nil)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAvailable, result.Available)
			if tt.wantAvailable {
				assert.Equal(t, tt.wantShift, result.Shift)
				assert.Equal(t, result.Window, testSchedule().Monday.WindowFor(tt.wantShift))
			} else {
				assert.Equal(t, tt.wantReason, result.Reason)
			}
		})
	}
}

func TestCheck_GapBetweenShiftsIsRejected(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	// 13:00 is after the morning end and before the afternoon start
	result, err := Check(Request{Date: monday, Time: "13:00"}, testSchedule(), nil)
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideShiftWindows, result.Reason)
	assert.Empty(t, result.Shift, "time in the gap does not round to a shift")
}

func TestCheck_ShiftExclusivity(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	bookings := []*domain.Booking{
		{
			ID:          1,
			ChefID:      10,
			BookingDate: monday,
			Shift:       domain.ShiftMorning,
			Status:      domain.StatusConfirmed,
		},
	}

	// Morning of the same date is taken
	result, err := Check(Request{Date: monday, Time: "09:00"}, testSchedule(), bookings)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonShiftAlreadyBooked, result.Reason)
	require.NotNil(t, result.ConflictingWindow)
	assert.Equal(t, types.TimeString("08:00"), result.ConflictingWindow.Start)

	// Afternoon of the same date is still free
	result, err = Check(Request{Date: monday, Time: "15:00"}, testSchedule(), bookings)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, domain.ShiftAfternoon, result.Shift)

	// Morning of another date is free as well
	otherMonday := mustDate(t, "2024-01-22")
	result, err = Check(Request{Date: otherMonday, Time: "09:00"}, testSchedule(), bookings)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_InactiveBookingsDoNotBlock(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	tests := []struct {
		name          string
		status        domain.BookingStatus
		wantAvailable bool
	}{
		{name: "pending blocks", status: domain.StatusPending, wantAvailable: false},
		{name: "confirmed blocks", status: domain.StatusConfirmed, wantAvailable: false},
		{name: "cancelled by client does not block", status: domain.StatusCancelledByClient, wantAvailable: true},
		{name: "cancelled by chef does not block", status: domain.StatusCancelledByChef, wantAvailable: true},
		{name: "completed does not block", status: domain.StatusCompleted, wantAvailable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := []*domain.Booking{
				{BookingDate: monday, Shift: domain.ShiftMorning, Status: tt.status},
			}

			result, err := Check(Request{Date: monday, Time: "10:00"}, testSchedule(), bookings)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.Available)
		})
	}
}

func TestCheck_DisabledShift(t *testing.T) {
	sunday := mustDate(t, "2024-01-14") // Sunday, afternoon disabled in testSchedule

	// Existing bookings are irrelevant for a disabled shift
	bookings := []*domain.Booking{
		{BookingDate: sunday, Shift: domain.ShiftAfternoon, Status: domain.StatusConfirmed},
	}

	result, err := Check(Request{Date: sunday, Time: "15:00"}, testSchedule(), bookings)
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, ReasonShiftNotOffered, result.Reason)
	assert.Equal(t, domain.ShiftAfternoon, result.Shift)

	// Morning of the same Sunday still works
	result, err = Check(Request{Date: sunday, Time: "09:00"}, testSchedule(), nil)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestCheck_Determinism(t *testing.T) {
	monday := mustDate(t, "2024-01-15")
	bookings := []*domain.Booking{
		{BookingDate: monday, Shift: domain.ShiftMorning, Status: domain.StatusPending},
	}

	first, err := Check(Request{Date: monday, Time: "09:30"}, testSchedule(), bookings)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Check(Request{Date: monday, Time: "09:30"}, testSchedule(), bookings)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCheck_InvalidTime(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	for _, value := range []string{"9:30", "25:00", "12:60", "midnight", ""} {
		_, err := Check(Request{Date: monday, Time: types.TimeString(value)}, testSchedule(), nil)
		assert.ErrorIs(t, err, ErrInvalidTime, "value %q", value)
	}
}

func TestCheck_DayNotConfigured(t *testing.T) {
	schedule := testSchedule()
	schedule.Wednesday = domain.DaySchedule{}

	wednesday := mustDate(t, "2024-01-17")
	_, err := Check(Request{Date: wednesday, Time: "09:00"}, schedule, nil)
	assert.ErrorIs(t, err, ErrDayNotConfigured)
}

func TestCheck_WeekdayResolution(t *testing.T) {
	// Only Tuesday morning enabled; every other window disabled
	var schedule domain.WeeklySchedule
	for _, weekday := range domain.Weekdays {
		schedule.SetDay(weekday, domain.DaySchedule{
			Morning:   domain.ShiftWindow{Start: "08:00", End: "12:00", Available: false},
			Afternoon: domain.ShiftWindow{Start: "14:00", End: "18:00", Available: false},
		})
	}
	schedule.Tuesday.Morning.Available = true

	result, err := Check(Request{Date: mustDate(t, "2024-01-16"), Time: "09:00"}, schedule, nil)
	require.NoError(t, err)
	assert.True(t, result.Available, "2024-01-16 is a Tuesday")

	result, err = Check(Request{Date: mustDate(t, "2024-01-15"), Time: "09:00"}, schedule, nil)
	require.NoError(t, err)
	assert.False(t, result.Available, "2024-01-15 is a Monday")
	assert.Equal(t, ReasonShiftNotOffered, result.Reason)
}

func TestCheck_Scenario(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	result, err := Check(Request{Date: monday, Time: "09:30"}, testSchedule(), nil)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, domain.ShiftMorning, result.Shift)

	result, err = Check(Request{Date: monday, Time: "13:00"}, testSchedule(), nil)
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, ReasonOutsideShiftWindows, result.Reason)
}

func TestAvailableShifts(t *testing.T) {
	monday := mustDate(t, "2024-01-15")

	bookings := []*domain.Booking{
		{BookingDate: monday, Shift: domain.ShiftMorning, Status: domain.StatusPending},
	}

	shifts, err := AvailableShifts(monday, testSchedule(), bookings)
	require.NoError(t, err)
	require.Len(t, shifts, 2)

	assert.Equal(t, domain.ShiftMorning, shifts[0].Shift)
	assert.Equal(t, "MANHÃ", shifts[0].Name)
	assert.False(t, shifts[0].Open)
	assert.Equal(t, ReasonShiftAlreadyBooked, shifts[0].Reason)

	assert.Equal(t, domain.ShiftAfternoon, shifts[1].Shift)
	assert.Equal(t, "TARDE", shifts[1].Name)
	assert.True(t, shifts[1].Open)
}

func TestAvailableShifts_DisabledShift(t *testing.T) {
	sunday := mustDate(t, "2024-01-14")

	shifts, err := AvailableShifts(sunday, testSchedule(), nil)
	require.NoError(t, err)
	require.Len(t, shifts, 2)

	assert.True(t, shifts[0].Open)
	assert.False(t, shifts[1].Open)
	assert.Equal(t, ReasonShiftNotOffered, shifts[1].Reason)
}
